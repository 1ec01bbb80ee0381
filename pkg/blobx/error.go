package blobx

import (
	"net/http"

	"github.com/Abraxas-365/eduresume/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("BLOB")

// Error codes
var (
	CodeNotInitialized     = ErrRegistry.Register("NOT_INITIALIZED", errx.TypeInternal, http.StatusInternalServerError, "Object store used before initialization")
	CodeAlreadyInitialized = ErrRegistry.Register("ALREADY_INITIALIZED", errx.TypeConflict, http.StatusConflict, "Object store already initialized")
	CodeObjectNotFound     = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Object not found")
	CodeWriteFailed        = ErrRegistry.Register("WRITE_FAILED", errx.TypeExternal, http.StatusInternalServerError, "Failed to write object")
	CodeReadFailed         = ErrRegistry.Register("READ_FAILED", errx.TypeExternal, http.StatusInternalServerError, "Failed to read object")
)

// Helper functions
func ErrNotInitialized() *errx.Error {
	return ErrRegistry.New(CodeNotInitialized)
}

func ErrAlreadyInitialized() *errx.Error {
	return ErrRegistry.New(CodeAlreadyInitialized)
}

func ErrObjectNotFound() *errx.Error {
	return ErrRegistry.New(CodeObjectNotFound)
}

func ErrWriteFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeWriteFailed, cause)
}

func ErrReadFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeReadFailed, cause)
}
