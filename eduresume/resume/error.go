package resume

import (
	"net/http"

	"github.com/Abraxas-365/eduresume/pkg/errx"
)

var registry = errx.NewRegistry("RESUME")

var (
	CodeNotFound     = registry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
	CodeForbidden    = registry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Not allowed to access this resume")
	CodeInvalidInput = registry.Register("INVALID_INPUT", errx.TypeValidation, http.StatusBadRequest, "Invalid resume input")
)

func ErrResumeNotFound() *errx.Error {
	return registry.New(CodeNotFound)
}

func ErrForbidden() *errx.Error {
	return registry.New(CodeForbidden)
}

func ErrInvalidInput(detail string) *errx.Error {
	return registry.New(CodeInvalidInput).WithDetail("reason", detail)
}
