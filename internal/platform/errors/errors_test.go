package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeWordRequired:     http.StatusUnprocessableEntity,
		CodePromptRequired:   http.StatusUnprocessableEntity,
		CodeWordNotASCII:     http.StatusBadRequest,
		CodeInvalidArgument:  http.StatusBadRequest,
		CodeSimulationFailed: http.StatusInternalServerError,
		Code("UNKNOWN"):      http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := code.HTTPStatus(); got != want {
			t.Fatalf("%s status = %d, want %d", code, got, want)
		}
	}
}

func TestAsFindsWrappedDomainError(t *testing.T) {
	cause := stderrors.New("grid too small")
	err := fmt.Errorf("handler: %w", Wrap(CodeSimulationFailed, "simulation failed", cause))

	got := As(err)
	if got.Code != CodeSimulationFailed {
		t.Fatalf("code = %s, want %s", got.Code, CodeSimulationFailed)
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause to remain reachable")
	}
	if !stderrors.Is(err, New(CodeSimulationFailed, "")) {
		t.Fatal("expected code match via errors.Is")
	}
}

func TestAsDefaultsToInternal(t *testing.T) {
	if got := As(stderrors.New("boom")); got.Code != CodeInternal {
		t.Fatalf("code = %s, want %s", got.Code, CodeInternal)
	}
	if As(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}
