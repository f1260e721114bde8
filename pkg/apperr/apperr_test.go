package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("bad", nil), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
		{Forbidden("nope"), http.StatusForbidden},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Conflict("taken"), http.StatusConflict},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := tc.err.Status(); got != tc.want {
			t.Errorf("Status() for kind %d = %d, want %d", tc.err.Kind, got, tc.want)
		}
	}
}

func TestAsAndIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound("missing"))

	ae, ok := As(err)
	if !ok {
		t.Fatal("expected As to find the domain error")
	}
	if ae.Kind != KindNotFound {
		t.Errorf("expected KindNotFound, got %d", ae.Kind)
	}
	if !IsKind(err, KindNotFound) {
		t.Error("expected IsKind to match through wrapping")
	}
	if IsKind(err, KindConflict) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Error("IsKind matched a non-domain error")
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal(cause)

	if err.Message == cause.Error() {
		t.Error("internal error leaked its cause into the message")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to remain reachable via Unwrap")
	}
}
