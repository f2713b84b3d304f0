package utils

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ExtensionFromMimeType returns the file extension mimetype knows for an
// image MIME type, e.g. "image/png" -> ".png".
func ExtensionFromMimeType(mimeType string) (string, error) {
	// drop parameters such as "; charset=utf-8"
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])

	mt := mimetype.Lookup(cleaned)
	if mt == nil || mt.Extension() == "" {
		return "", fmt.Errorf("unsupported mime type: %q", mimeType)
	}

	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("not an image mime type: %q", mimeType)
	}

	return mt.Extension(), nil
}
