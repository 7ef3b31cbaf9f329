package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidTheme, "unknown theme: %s", "neon")

	if err.Code != ErrCodeInvalidTheme {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidTheme)
	}
	if err.Message != "unknown theme: neon" {
		t.Errorf("Message = %q, want %q", err.Message, "unknown theme: neon")
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	want := "INVALID_THEME: unknown theme: neon"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeCollaborator, cause, "research provider failed")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, want it to contain the cause", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeInvalidAspect, "bad aspect"), ErrCodeInvalidAspect, true},
		{"different code", New(ErrCodeInvalidAspect, "bad aspect"), ErrCodeInvalidTheme, false},
		{"wrapped in plain error", fmt.Errorf("outer: %w", New(ErrCodeNotFound, "missing")), ErrCodeNotFound, true},
		{"plain error", stderrors.New("plain"), ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFormat, "bad format")); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidFormat)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidTheme, "unknown theme: neon")
	if got := UserMessage(err); got != "unknown theme: neon" {
		t.Errorf("UserMessage() = %q, want message without code", got)
	}

	plain := stderrors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain error")
	}
}

func TestValidationError(t *testing.T) {
	var v ValidationError

	if v.HasProblems() {
		t.Error("empty ValidationError reports problems")
	}
	if v.AsError() != nil {
		t.Error("empty ValidationError AsError() != nil")
	}

	v.Add("slide %d has no title", 3)
	v.Add("company name is empty")

	if !v.HasProblems() {
		t.Error("HasProblems() = false after Add")
	}
	err := v.AsError()
	if err == nil {
		t.Fatal("AsError() = nil, want error")
	}
	if !Is(err, ErrCodeInvalidOutline) {
		t.Errorf("AsError() code = %q, want %q", GetCode(err), ErrCodeInvalidOutline)
	}
	if !strings.Contains(err.Error(), "slide 3 has no title") {
		t.Errorf("Error() = %q, want it to list problems", err.Error())
	}
}
