package handler

import (
	"errors"
	"net/http"

	"chainflow/internal/core"
	"chainflow/internal/flow"
	"chainflow/internal/ledger"
	tokenIssuer "chainflow/pkg/jwt"
)

// statusFor maps service errors to the status code and the message safe to
// show to the caller.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrIncorrectPassword):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, tokenIssuer.ErrTokenNotValid),
		errors.Is(err, tokenIssuer.ErrTokenExpired):
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, flow.ErrUnknownKind),
		errors.Is(err, flow.ErrInvalidParams):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, core.ErrFlowNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, flow.ErrInvalidTransition),
		errors.Is(err, flow.ErrFlowBusy),
		errors.Is(err, core.ErrFlowNotLive):
		return http.StatusConflict, err.Error()
	case errors.Is(err, ledger.ErrNotConnected):
		return http.StatusServiceUnavailable, err.Error()
	}
	return http.StatusInternalServerError, "unexpected error occurred"
}
