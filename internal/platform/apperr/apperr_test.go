package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"unauthenticated", Unauthenticated("no token"), http.StatusUnauthorized},
		{"invalid credential", InvalidCredential("bad token"), http.StatusUnauthorized},
		{"forbidden", Forbidden("nope"), http.StatusForbidden},
		{"validation", Validation("missing"), http.StatusBadRequest},
		{"reference", Reference("invalid patient or doctor"), http.StatusBadRequest},
		{"not found", NotFound("gone"), http.StatusNotFound},
		{"not found or unauthorized", NotFoundOrUnauthorized("hidden"), http.StatusNotFound},
		{"conflict", Conflict("dup"), http.StatusConflict},
		{"wrapped", fmt.Errorf("outer: %w", Conflict("dup")), http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestError_MessageAndKind(t *testing.T) {
	err := NotFound("patient %d doesn't exist", 7)
	if err.Error() != "patient 7 doesn't exist" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected errors.Is(err, ErrNotFound)")
	}
	if errors.Is(err, ErrNotFoundOrUnauthorized) {
		t.Error("NotFound must not match NotFoundOrUnauthorized")
	}
}

func TestError_EmptyMessageFallsBackToKind(t *testing.T) {
	err := &Error{Kind: ErrConflict}
	if err.Error() != "conflict" {
		t.Errorf("expected kind text, got %q", err.Error())
	}
}

func TestIsExpected(t *testing.T) {
	if !IsExpected(Validation("x")) {
		t.Error("taxonomy error should be expected")
	}
	if IsExpected(errors.New("driver exploded")) {
		t.Error("plain error should not be expected")
	}
}
