package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"shop-winback/cmd/bootstrap"
	"shop-winback/internal/pkg/config"
	"shop-winback/internal/usecase/commands"
	"shop-winback/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const shutdownTimeout = 30 * time.Second

func init() {
	// Fail safe: never expose debug info because of a missing setting.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           shop-winback
// @version         1.0
// @description     Admin API for the daily win-back coupon campaign.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("🚀 Starting admin server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("Admin server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 Stopping admin server")
			return srv.Shutdown(ctx)
		},
	})
}

// runOnce executes a single campaign run after startup, then shuts the app down.
// A signal during the run cancels it through the OnStop hook.
func runOnce(lc fx.Lifecycle, runner *commands.CampaignRunner, shutdowner fx.Shutdowner, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				report, err := runner.Trigger(ctx, readmodel.TriggerManual)
				code := 0
				if err != nil || report.Status != readmodel.RunStatusSucceeded {
					code = 1
				}
				if report != nil {
					logger.Info("campaign run finished",
						"status", report.Status,
						"messages_sent", report.MessagesSent,
						"messages_failed", report.MessagesFailed,
					)
				}
				_ = shutdowner.Shutdown(fx.ExitCode(code))
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

func main() {
	once := flag.Bool("once", false, "run the campaign once and exit instead of serving")
	issueToken := flag.String("issue-token", "", "print an admin API token for the named operator and exit")
	flag.Parse()

	if *issueToken != "" {
		if err := printToken(*issueToken); err != nil {
			slog.Error("Failed to issue token", "error", err)
			os.Exit(1)
		}
		return
	}

	options := []fx.Option{
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
	}
	if *once {
		options = append(options, fx.Invoke(runOnce))
	} else {
		options = append(options, bootstrap.SchedulerModule, fx.Invoke(startServer))
	}
	app := fx.New(options...)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("Failed to stop application cleanly", "error", err)
	}

	slog.Info("Application stopped", "exit_code", sig.ExitCode)
	if sig.ExitCode != 0 {
		os.Exit(sig.ExitCode)
	}
}

func printToken(operator string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	svc, err := bootstrap.NewJWTService(cfg)
	if err != nil {
		return err
	}
	token, err := svc.GenerateToken(operator)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
