package bootstrap

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_FormatAndUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := newError(DirectoryCreationFailure, "ensuring working directory", cause)

	want := "DirectoryCreationFailure: ensuring working directory: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"plain", errors.New("x"), ""},
		{"direct", newError(InstallationFailure, "installing", nil), InstallationFailure},
		{"wrapped", fmt.Errorf("run: %w", newError(InterpreterNotFound, "locating", nil)), InterpreterNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf = %q, want %q", got, tt.want)
			}
		})
	}
}
