package template

import (
	"net/http"

	"github.com/Abraxas-365/eduresume/pkg/errx"
)

var registry = errx.NewRegistry("TEMPLATE")

var (
	CodeNotFound       = registry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Template not found")
	CodeInvalidInput   = registry.Register("INVALID_INPUT", errx.TypeValidation, http.StatusBadRequest, "Invalid template input")
	CodeForbidden      = registry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Not allowed to manage this template")
	CodeInvalidPDF     = registry.Register("INVALID_PDF", errx.TypeValidation, http.StatusBadRequest, "Uploaded file is not a readable PDF")
	CodeStorageFailure = registry.Register("STORAGE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Template storage operation failed")
)

func ErrTemplateNotFound() *errx.Error {
	return registry.New(CodeNotFound)
}

func ErrInvalidInput(detail string) *errx.Error {
	return registry.New(CodeInvalidInput).WithDetail("reason", detail)
}

func ErrForbidden() *errx.Error {
	return registry.New(CodeForbidden)
}

func ErrInvalidPDF(cause error) *errx.Error {
	return registry.NewWithCause(CodeInvalidPDF, cause)
}

func ErrStorageFailure(cause error) *errx.Error {
	return registry.NewWithCause(CodeStorageFailure, cause)
}
