package application

import (
	"net/http"

	"github.com/Abraxas-365/eduresume/pkg/errx"
)

var registry = errx.NewRegistry("APPLICATION")

var (
	CodeNotFound       = registry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeForbidden      = registry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Not allowed to access this application")
	CodeInvalidInput   = registry.Register("INVALID_INPUT", errx.TypeValidation, http.StatusBadRequest, "Invalid application input")
	CodeAlreadyApplied = registry.Register("ALREADY_APPLIED", errx.TypeConflict, http.StatusConflict, "Already applied to this job")
)

func ErrApplicationNotFound() *errx.Error {
	return registry.New(CodeNotFound)
}

func ErrForbidden() *errx.Error {
	return registry.New(CodeForbidden)
}

func ErrInvalidInput(detail string) *errx.Error {
	return registry.New(CodeInvalidInput).WithDetail("reason", detail)
}

func ErrAlreadyApplied() *errx.Error {
	return registry.New(CodeAlreadyApplied)
}
