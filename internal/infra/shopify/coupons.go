package shopify

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"shop-winback/internal/domain/coupon"
	"shop-winback/internal/pkg/errs"
)

type priceRule struct {
	ID                int64  `json:"id,omitempty"`
	Title             string `json:"title"`
	TargetType        string `json:"target_type"`
	TargetSelection   string `json:"target_selection"`
	AllocationMethod  string `json:"allocation_method"`
	ValueType         string `json:"value_type"`
	Value             string `json:"value"`
	CustomerSelection string `json:"customer_selection"`
	StartsAt          string `json:"starts_at"`
	EndsAt            string `json:"ends_at"`
}

type priceRuleEnvelope struct {
	PriceRule priceRule `json:"price_rule"`
}

type discountCode struct {
	ID          int64  `json:"id,omitempty"`
	Code        string `json:"code"`
	PriceRuleID int64  `json:"price_rule_id"`
}

type discountCodeEnvelope struct {
	DiscountCode discountCode `json:"discount_code"`
}

type CouponClient struct {
	client *Client
}

func NewCouponClient(client *Client) *CouponClient {
	return &CouponClient{client: client}
}

// CreateCoupon creates a percentage price rule and attaches the coupon code to it.
// If the code cannot be attached the price rule is deleted again, so the shop never
// keeps a rule without its code.
func (c *CouponClient) CreateCoupon(ctx context.Context, cp *coupon.Coupon) (int64, error) {
	logger := c.client.logger.With(slog.String("coupon_code", cp.Code().String()))

	var created priceRuleEnvelope
	_, err := c.client.api.Do(ctx, http.MethodPost, c.client.baseURL+"/price_rules.json", priceRuleEnvelope{
		PriceRule: priceRule{
			Title:             cp.Title(),
			TargetType:        "line_item",
			TargetSelection:   "all",
			AllocationMethod:  "across",
			ValueType:         "percentage",
			Value:             cp.Discount().RuleValue(),
			CustomerSelection: "all",
			StartsAt:          cp.ValidFrom().Format(time.RFC3339),
			EndsAt:            cp.ValidTo().Format(time.RFC3339),
		},
	}, &created)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "create price rule"), errs.ErrCouponCreationFailed)
	}
	ruleID := created.PriceRule.ID
	if ruleID == 0 {
		return 0, errs.Mark(errs.New("price rule response carried no id"), errs.ErrCouponCreationFailed)
	}
	logger.InfoContext(ctx, "price rule created", slog.Int64("price_rule_id", ruleID))

	rulePath := c.client.baseURL + "/price_rules/" + strconv.FormatInt(ruleID, 10)

	var code discountCodeEnvelope
	_, err = c.client.api.Do(ctx, http.MethodPost, rulePath+"/discount_codes.json", discountCodeEnvelope{
		DiscountCode: discountCode{Code: cp.Code().String(), PriceRuleID: ruleID},
	}, &code)
	if err != nil {
		if _, delErr := c.client.api.Do(ctx, http.MethodDelete, rulePath+".json", nil, nil); delErr != nil {
			logger.ErrorContext(ctx, "failed to delete orphaned price rule",
				slog.Int64("price_rule_id", ruleID),
				slog.String("error", delErr.Error()),
			)
		}
		return 0, errs.Mark(errs.Wrap(err, "create discount code"), errs.ErrCouponCreationFailed)
	}

	logger.InfoContext(ctx, "discount code created", slog.String("code", code.DiscountCode.Code))
	return ruleID, nil
}
