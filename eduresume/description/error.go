package description

import (
	"net/http"

	"github.com/Abraxas-365/eduresume/pkg/errx"
)

var registry = errx.NewRegistry("DESCRIPTION")

var (
	CodeInvalidInput    = registry.Register("INVALID_INPUT", errx.TypeValidation, http.StatusBadRequest, "Invalid generation input")
	CodeUpstreamAuth    = registry.Register("UPSTREAM_AUTH", errx.TypeExternal, http.StatusUnauthorized, "AI provider rejected credentials")
	CodeUpstreamFailure = registry.Register("UPSTREAM_FAILURE", errx.TypeExternal, http.StatusInternalServerError, "Failed to generate description")
)

func ErrInvalidInput(detail string) *errx.Error {
	return registry.New(CodeInvalidInput).WithDetail("reason", detail)
}

func ErrUpstreamAuth(cause error) *errx.Error {
	return registry.NewWithCause(CodeUpstreamAuth, cause)
}

func ErrUpstreamFailure(cause error) *errx.Error {
	return registry.NewWithCause(CodeUpstreamFailure, cause)
}
