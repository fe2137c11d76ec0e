package errors

import "testing"

func TestErrorHelpers(t *testing.T) {
	err := NewInvalidArgument("bad")
	if !IsInvalidArgument(err) {
		t.Fatal("expected invalid argument")
	}

	wrapped := WrapInternal(err, "ctx")
	if !IsInternal(wrapped) {
		t.Fatal("expected internal")
	}

	if IsInvalidToken(ErrMissingToken) || IsMissingToken(ErrInvalidToken) {
		t.Fatal("missing and invalid token must stay distinct")
	}

	if !IsUnauthenticated(ErrUnauthenticated) {
		t.Fatal("expected unauthenticated")
	}
}
