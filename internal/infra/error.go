package infra

import (
	"errors"
	"log/slog"

	"shop-winback/internal/pkg/errs"
)

type GatewayErrorKind string

// GatewayError is returned by every outbound HTTP adapter.
type GatewayError struct {
	Kind   GatewayErrorKind
	Status int // HTTP status, 0 when no response was read
	msg    string
	err    error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Gateway error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, Status: status, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Gateway error kinds
const (
	KindTransportFailure GatewayErrorKind = "TRANSPORT_FAILURE"
	KindUnexpectedStatus GatewayErrorKind = "UNEXPECTED_STATUS"
	KindDecodeFailure    GatewayErrorKind = "DECODE_FAILURE"
	KindInvalidRequest   GatewayErrorKind = "INVALID_REQUEST"
)
