package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, code int, body gin.H) {
	c.JSON(code, body)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP responses.
// Anything unrecognised is logged and reported as a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserAlreadyExists):
		RespondError(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrAccountDeactivated):
		RespondError(c, http.StatusUnauthorized, "Account has been deactivated")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrProductInactive):
		RespondError(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, ErrOrderNotFound):
		RespondError(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrUnknownProvider):
		RespondError(c, http.StatusBadRequest, "Invalid provider")
	case errors.Is(err, ErrProviderFailure):
		RespondError(c, http.StatusBadRequest, "Failed to authenticate with "+providerName(err))
	case errors.Is(err, ErrMissingEmail):
		RespondError(c, http.StatusBadRequest, "Failed to get user information")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Limit must be between 1 and 100")
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrOrderNotPayable),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, validationMessage(err))
	default:
		Logger(c).Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// validationMessage strips the sentinel suffix so clients only see the detail
// the service attached with fmt.Errorf("%s: %w", detail, sentinel).
func validationMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrInvalidTransition, ErrOrderNotPayable, ErrInsufficientFunds} {
		if errors.Is(err, sentinel) {
			if detail := strings.TrimSuffix(msg, ": "+sentinel.Error()); detail != msg {
				return detail
			}
		}
	}
	return msg
}

// ProviderError tags ErrProviderFailure with the provider name for the client message.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() []error {
	return []error{ErrProviderFailure, e.Err}
}

func providerName(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Provider
	}
	return "provider"
}
