package jobopening

import (
	"net/http"

	"github.com/Abraxas-365/eduresume/pkg/errx"
)

var registry = errx.NewRegistry("JOB")

var (
	CodeNotFound     = registry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job opening not found")
	CodeInvalidInput = registry.Register("INVALID_INPUT", errx.TypeValidation, http.StatusBadRequest, "Invalid job opening input")
	CodeNotOpen      = registry.Register("NOT_OPEN", errx.TypeBusiness, http.StatusConflict, "Job opening is not accepting applications")
)

func ErrJobNotFound() *errx.Error {
	return registry.New(CodeNotFound)
}

func ErrInvalidInput(detail string) *errx.Error {
	return registry.New(CodeInvalidInput).WithDetail("reason", detail)
}

func ErrJobNotOpen() *errx.Error {
	return registry.New(CodeNotOpen)
}
