// Package evolution sends WhatsApp messages through an Evolution API instance.
package evolution

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"shop-winback/internal/infra"
	"shop-winback/internal/pkg/config"
	"shop-winback/internal/pkg/errs"
)

const (
	apiKeyHeader = "apikey"

	typingDelayMillis = 1000
	presenceComposing = "composing"
)

type sendTextRequest struct {
	Number      string      `json:"number"`
	TextMessage textMessage `json:"textMessage"`
	Options     sendOptions `json:"options"`
}

type textMessage struct {
	Text string `json:"text"`
}

type sendOptions struct {
	Delay       int    `json:"delay"`
	Presence    string `json:"presence"`
	LinkPreview bool   `json:"linkPreview"`
}

type Client struct {
	api     *infra.JSONClient
	sendURL string
	logger  *slog.Logger
}

func NewClient(cfg config.MessagingConfig, logger *slog.Logger, opts ...infra.JSONClientOption) *Client {
	logger = logger.With(slog.String("gateway", "evolution"))
	opts = append([]infra.JSONClientOption{infra.WithHeader(apiKeyHeader, cfg.APIKey)}, opts...)
	return &Client{
		api:     infra.NewJSONClient(cfg.Timeout, logger, opts...),
		sendURL: strings.TrimRight(cfg.Endpoint, "/") + "/message/sendText/" + url.PathEscape(cfg.Instance),
		logger:  logger,
	}
}

// SendText delivers text to number. An empty number is rejected without calling the API.
func (c *Client) SendText(ctx context.Context, number, text string) error {
	if number == "" {
		return errs.Mark(errs.New("recipient number is empty"), errs.ErrNoRecipient)
	}

	c.logger.InfoContext(ctx, "sending whatsapp message", slog.String("number", number))

	_, err := c.api.Do(ctx, http.MethodPost, c.sendURL, sendTextRequest{
		Number:      number,
		TextMessage: textMessage{Text: text},
		Options: sendOptions{
			Delay:       typingDelayMillis,
			Presence:    presenceComposing,
			LinkPreview: true,
		},
	}, nil)
	if err != nil {
		return errs.Wrapf(err, "send whatsapp message to %s", number)
	}
	return nil
}
