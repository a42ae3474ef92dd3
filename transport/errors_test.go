package transport

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindConnection, "connection"},
		{KindTimeout, "timeout"},
		{KindRequest, "request"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("refused")
	err := NewConnectionError(fmt.Errorf("dial: %w", cause))

	if !errors.Is(err, cause) {
		t.Error("expected cause in chain")
	}
	if !IsConnection(err) {
		t.Error("expected connection classification")
	}
	if IsTimeout(err) {
		t.Error("did not expect timeout classification")
	}
}

func TestError_ClassifiersAcceptWrapped(t *testing.T) {
	err := fmt.Errorf("attempt 2: %w", NewTimeoutError(errors.New("deadline")))
	if !IsTimeout(err) {
		t.Error("expected timeout through wrapping")
	}
}
