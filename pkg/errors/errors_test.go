package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeEmptyInput, "no nodes in %s", "a.ast"),
			want: "EMPTY_INPUT: no nodes in a.ast",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeRender, stderrors.New("boom"), "render failed"),
			want: "RENDER_ERROR: render failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeFileNotFound, "missing")

	if !Is(err, ErrCodeFileNotFound) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeRender) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeFileNotFound) {
		t.Error("Is() = true for plain error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeEmptyInput, "empty")
	wrapped := Wrap(ErrCodeRender, inner, "outer")

	// errors.As finds the outermost *Error, so the outer code wins.
	if !Is(wrapped, ErrCodeRender) {
		t.Error("Is() did not match the outer code")
	}
	if !stderrors.Is(wrapped, inner) {
		t.Error("stderrors.Is() did not unwrap to the inner error")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFormat, "bad")); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidFormat)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q for plain error, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeRender, "graphviz unavailable")); got != "graphviz unavailable" {
		t.Errorf("UserMessage() = %q, want message without code", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}
