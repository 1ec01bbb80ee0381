package feedback

import (
	"net/http"

	"github.com/Abraxas-365/eduresume/pkg/errx"
)

var registry = errx.NewRegistry("FEEDBACK")

var (
	CodeNotFound     = registry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Feedback not found")
	CodeForbidden    = registry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Not allowed to manage this feedback")
	CodeInvalidInput = registry.Register("INVALID_INPUT", errx.TypeValidation, http.StatusBadRequest, "Invalid feedback input")
)

func ErrFeedbackNotFound() *errx.Error {
	return registry.New(CodeNotFound)
}

func ErrForbidden() *errx.Error {
	return registry.New(CodeForbidden)
}

func ErrInvalidInput(detail string) *errx.Error {
	return registry.New(CodeInvalidInput).WithDetail("reason", detail)
}
