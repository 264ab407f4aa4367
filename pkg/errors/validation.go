package errors

import (
	"strings"
	"unicode"
)

// ValidateEntityName validates an entity name for safety and correctness.
// Entity names flow into cache keys, file paths, and store queries, so
// the rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path traversal sequences (.., //, backslash)
//   - Maximum length of 256 characters
func ValidateEntityName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDocument, "entity name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidDocument, "entity name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDocument, "entity name contains invalid control characters")
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
			return New(ErrCodeInvalidDocument, "entity name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidatePassID validates a resolution pass ID from an API path.
// Pass IDs are UUID strings; anything with separators or control
// characters is rejected before it reaches the store.
func ValidatePassID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "pass id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "pass id too long")
	}
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return New(ErrCodeInvalidInput, "pass id contains invalid character %q", r)
		}
	}
	return nil
}
