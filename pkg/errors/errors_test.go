package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	e := &AppError{Code: CodeNotFound, Message: "article not found", Status: http.StatusNotFound}
	if e.Error() != "article not found" {
		t.Errorf("Error() = %q, want %q", e.Error(), "article not found")
	}

	wrapped := e.WithError(errors.New("no documents in result"))
	if wrapped.Error() != "article not found: no documents in result" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	e := Wrap(cause, ErrStoreUnavailable)

	if !errors.Is(e, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}
}

func TestIs(t *testing.T) {
	err := ErrNotFound.WithMessage("user not found")
	if !Is(err, ErrNotFound) {
		t.Error("Is() = false, want true for same code")
	}
	if Is(err, ErrConflict) {
		t.Error("Is() = true, want false for different code")
	}
	if Is(errors.New("plain"), ErrNotFound) {
		t.Error("Is() = true, want false for non-AppError")
	}

	// Code match should survive wrapping with fmt.Errorf
	wrapped := fmt.Errorf("lookup: %w", err)
	if !Is(wrapped, ErrNotFound) {
		t.Error("Is() should unwrap nested errors")
	}
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusConflict},
		{ErrAuthentication, http.StatusUnauthorized},
		{ErrStoreUnavailable, http.StatusServiceUnavailable},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := GetStatus(tt.err); got != tt.status {
			t.Errorf("GetStatus(%v) = %d, want %d", tt.err, got, tt.status)
		}
	}
}

func TestWithMessage(t *testing.T) {
	err := ErrAuthentication.WithMessage("invalid credentials")
	if err.Message != "invalid credentials" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Code != CodeAuthentication {
		t.Errorf("Code = %q, want %q", err.Code, CodeAuthentication)
	}
	if err.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", err.Status, http.StatusUnauthorized)
	}
	if ErrAuthentication.Message == "invalid credentials" {
		t.Error("WithMessage() must not mutate the base error")
	}
}
