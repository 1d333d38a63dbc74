package api

import (
	"net/http"

	resdto "shop-winback/internal/handler/dto/response"
	"shop-winback/internal/handler/httperr"
	"shop-winback/internal/handler/middleware"
	"shop-winback/internal/pkg/errs"
	"shop-winback/internal/usecase/commands"
	"shop-winback/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

var errNoRunYet = errs.New("no campaign run recorded since startup")

type CampaignHandler struct {
	runner commands.RunController
}

func NewCampaignHandler(runner commands.RunController) *CampaignHandler {
	return &CampaignHandler{runner: runner}
}

// @Summary Start campaign run
// @Description Start a win-back campaign run in the background
// @Tags campaign
// @Produce json
// @Security BearerAuth
// @Success 202 {object} resdto.CampaignRunStartedResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/campaign/runs [post]
func (h *CampaignHandler) StartRun(c *gin.Context) {
	operator, _ := middleware.GetOperator(c)

	runID, err := h.runner.Start(readmodel.TriggerManual, operator)
	if err != nil {
		if errs.Is(err, commands.ErrRunInProgress) {
			// ErrorHandler renders the conflict.
			_ = c.Error(err)
			c.Abort()
			return
		}
		if errs.Is(err, commands.ErrRunnerClosed) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service is shutting down", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to start campaign run", nil)
		return
	}
	c.JSON(http.StatusAccepted, resdto.CampaignRunStartedResponse{
		RunID:  runID.String(),
		Status: readmodel.RunStatusRunning,
	})
}

// @Summary Last campaign run
// @Description Get the report of the most recent campaign run
// @Tags campaign
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CampaignRunResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /api/campaign/runs/last [get]
func (h *CampaignHandler) LastRun(c *gin.Context) {
	run, ok := h.runner.LastRun()
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errNoRunYet, "No campaign run yet", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampaignRun(run))
}
