package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateLayoutName validates a layout or snapshot name for safety and
// correctness. It rejects names that could be used for path traversal
// or injection attacks.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidLayout, "layout name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidLayout, "layout name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLayout, "layout name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidLayout, "layout name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// componentIDRegex matches valid component identifiers: a letter
// followed by letters, digits, dots, dashes or underscores.
var componentIDRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._-]*$`)

// ValidateComponentID validates a component identifier as attached to
// content tiles. An empty id is allowed; it means the content is not
// bound to a component yet.
func ValidateComponentID(id string) error {
	if id == "" {
		return nil
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "component id too long (max 128 characters)")
	}
	if !componentIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid component id: %q", id)
	}
	return nil
}

// ValidatePath validates a file path for safety. It prevents path
// traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
