package util

import (
	"errors"
	"strings"
)

var errBadFileName = errors.New("invalid file name")

// SanitizeFileName makes an uploaded file name safe to use as part of a
// storage key. Names containing ".." are rejected outright rather than
// cleaned, and path separators become underscores.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errBadFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errBadFileName
	}
	return s, nil
}
