package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeWordRequired is returned when no seed word was supplied.
	CodeWordRequired Code = "WORD_REQUIRED"
	// CodeWordNotASCII is returned for words with non-ASCII characters.
	CodeWordNotASCII Code = "WORD_NOT_ASCII"
	// CodePromptRequired is returned when no prompt was supplied.
	CodePromptRequired Code = "PROMPT_REQUIRED"
	// CodeInvalidArgument is returned for malformed run parameters.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeSimulationFailed is returned when the simulation core rejects a run.
	CodeSimulationFailed Code = "SIMULATION_FAILED"
	// CodeInternal is returned for unexpected failures.
	CodeInternal Code = "INTERNAL"
)

// HTTPStatus maps the code to an HTTP status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeWordRequired, CodePromptRequired:
		return http.StatusUnprocessableEntity
	case CodeWordNotASCII, CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeSimulationFailed, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
