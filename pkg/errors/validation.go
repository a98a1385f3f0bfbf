package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds preset names so they fit the picker and table views.
const maxNameLength = 128

// ValidatePresetName validates a preset or group name loaded from a user
// preset file.
//
// Validation rules:
//   - Name cannot be empty or whitespace only
//   - Maximum length of 128 characters
//   - No control characters (including newlines)
//   - No semicolons, which separate courses in a preset value
func ValidatePresetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidPreset, "preset name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPreset, "preset name contains invalid control characters")
		}
	}

	if strings.Contains(name, ";") {
		return New(ErrCodeInvalidPreset, "preset name cannot contain ';'")
	}

	return nil
}

// ValidateOutputPath validates a diagram output path given on the command
// line. The path may be absolute or relative.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}
