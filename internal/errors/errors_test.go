package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestUsageError(t *testing.T) {
	err := Usagef("-c", "Expected number of argument = %d, with the %s option", 2, "-c")

	expectedMsg := "Expected number of argument = 2, with the -c option"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsUsage(err) {
		t.Error("Expected UsageError to be identified as usage error")
	}

	if IsResource(err) {
		t.Error("Expected UsageError not to be identified as resource error")
	}
}

func TestResourceError(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewResourceError("open", "demo.txt", "cannot open the file : demo.txt", cause)

	expectedMsg := "cannot open the file : demo.txt"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsResource(err) {
		t.Error("Expected ResourceError to be identified as resource error")
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("Expected ResourceError to wrap the underlying cause")
	}
}

func TestResourceErrorWithoutMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *ResourceError
		expected string
	}{
		{
			name:     "with cause",
			err:      NewResourceError("seek", "a.txt", "", errors.New("invalid argument")),
			expected: "seek a.txt: invalid argument",
		},
		{
			name:     "without cause",
			err:      NewResourceError("close", "a.txt", "", nil),
			expected: "close a.txt failed",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.Error() != test.expected {
				t.Errorf("Expected error message %q, got %q", test.expected, test.err.Error())
			}
		})
	}
}

func TestWrappedErrorsKeepCategory(t *testing.T) {
	usage := NewUsageError("-s", "bad")
	wrapped := errors.Join(errors.New("context"), usage)

	if !IsUsage(wrapped) {
		t.Error("Expected wrapped usage error to keep its category")
	}
}

func TestJoin(t *testing.T) {
	if Join(nil, nil) != nil {
		t.Error("Expected Join of nils to be nil")
	}

	single := errors.New("single")
	if Join(nil, single) != single {
		t.Error("Expected Join of one error to return it unchanged")
	}

	first := NewResourceError("close", "src", "", errors.New("bad fd"))
	second := errors.New("second")
	joined := Join(first, second)

	if !IsResource(joined) {
		t.Error("Expected joined error to match ErrResource")
	}
	if !errors.Is(joined, second) {
		t.Error("Expected joined error to contain the second error")
	}

	expectedMsg := "close src: bad fd (and 1 more errors)"
	if joined.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, joined.Error())
	}
}
