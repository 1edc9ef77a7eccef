package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInvalidPresetName.Error() != "invalid preset name" {
		t.Errorf("ErrInvalidPresetName has unexpected message: %s", ErrInvalidPresetName.Error())
	}
	if ErrPresetNotFound.Error() != "preset not found" {
		t.Errorf("ErrPresetNotFound has unexpected message: %s", ErrPresetNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InvalidPresetName", ErrInvalidPresetName, 4001},
		{"InvalidFormat", ErrInvalidFormat, 4002},
		{"DuplicatePreset", ErrDuplicatePreset, 4009},
		{"PresetNotFound", ErrPresetNotFound, 4040},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidFormat), 4002},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestPresetError(t *testing.T) {
	presetErr := &PresetError{
		Name:   "my preset",
		Format: "YYYY-MM-DD",
		Err:    ErrInvalidPresetName,
	}

	expectedErrMsg := `preset operation failed for "my preset" (format: "YYYY-MM-DD"): invalid preset name`
	if presetErr.Error() != expectedErrMsg {
		t.Errorf("PresetError.Error() = %s, want %s", presetErr.Error(), expectedErrMsg)
	}

	if !errors.Is(presetErr, ErrInvalidPresetName) {
		t.Error("PresetError should unwrap to its base error")
	}

	fields := presetErr.LogFields()
	if fields["preset"] != "my preset" {
		t.Errorf("LogFields preset = %v, want my preset", fields["preset"])
	}
	if fields["error_code"] != CodeInvalidPresetName {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeInvalidPresetName)
	}
}

func TestErrorPredicates(t *testing.T) {
	if !IsNotFoundError(ErrPresetNotFound) {
		t.Error("IsNotFoundError should match ErrPresetNotFound")
	}
	if IsNotFoundError(ErrDuplicatePreset) {
		t.Error("IsNotFoundError should not match ErrDuplicatePreset")
	}
	if !IsDuplicatePresetError(fmt.Errorf("create: %w", ErrDuplicatePreset)) {
		t.Error("IsDuplicatePresetError should match a wrapped ErrDuplicatePreset")
	}
}
