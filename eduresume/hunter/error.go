package hunter

import (
	"net/http"

	"github.com/Abraxas-365/eduresume/pkg/errx"
)

var registry = errx.NewRegistry("HUNTER")

var CodeInvalidInput = registry.Register("INVALID_INPUT", errx.TypeValidation, http.StatusBadRequest, "Invalid scoring input")

func ErrInvalidInput(detail string) *errx.Error {
	return registry.New(CodeInvalidInput).WithDetail("reason", detail)
}
