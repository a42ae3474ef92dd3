package rest

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewError_NilResponseIsSynthetic(t *testing.T) {
	err := NewError("no response", nil)
	if err.Response == nil {
		t.Fatal("expected synthetic response")
	}
	if err.Response.StatusCode != 0 {
		t.Errorf("expected zero status, got %d", err.Response.StatusCode)
	}
}

func TestError_Message(t *testing.T) {
	err := NewError("request failed with status 503", &Response{StatusCode: 503})
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("expected status in message, got %q", err.Error())
	}

	bare := NewError("boom", nil)
	if got := bare.Error(); got != "rest: boom" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewError("transport failure", nil)
	err.Err = cause

	if !errors.Is(err, cause) {
		t.Error("expected cause in chain")
	}
}

func TestAsError(t *testing.T) {
	inner := NewError("failed", &Response{StatusCode: 500})
	wrapped := fmt.Errorf("call: %w", inner)

	got, ok := AsError(wrapped)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if got.Response.StatusCode != 500 {
		t.Errorf("expected 500, got %d", got.Response.StatusCode)
	}

	if _, ok := AsError(errors.New("plain")); ok {
		t.Error("expected extraction to fail for plain error")
	}
}
