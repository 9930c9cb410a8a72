package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := New(NotFound, "Product not found")
	if KindOf(err) != NotFound {
		t.Fatalf("expected NotFound, got %v", KindOf(err))
	}

	wrapped := fmt.Errorf("handling request: %w", err)
	if KindOf(wrapped) != NotFound {
		t.Fatalf("expected NotFound through wrapping, got %v", KindOf(wrapped))
	}

	if KindOf(errors.New("boom")) != Internal {
		t.Fatal("untagged errors must classify as Internal")
	}
	if KindOf(nil) != Internal {
		t.Fatal("nil must classify as Internal")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(Unavailable, "Storage temporarily unavailable", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
	if Message(err) != "Storage temporarily unavailable" {
		t.Fatalf("unexpected message %q", Message(err))
	}
}

func TestMessageHidesInternals(t *testing.T) {
	if Message(errors.New("pq: relation does not exist")) != "Internal server error" {
		t.Fatal("untagged errors must not leak their message")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Unauthenticated, http.StatusUnauthorized},
		{NotFound, http.StatusNotFound},
		{InvalidInput, http.StatusBadRequest},
		{EmptyCart, http.StatusBadRequest},
		{Conflict, http.StatusConflict},
		{Unavailable, http.StatusServiceUnavailable},
		{Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(New(tc.kind, "x")); got != tc.want {
			t.Fatalf("kind %v: expected %d, got %d", tc.kind, tc.want, got)
		}
	}
}
