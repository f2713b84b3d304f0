package model

import (
	"errors"
	"strings"
	"unicode"
)

const MaxItemNameLength = 256

var (
	ErrItemNameRequired = errors.New("itemName is required")
	ErrItemNameUnsafe   = errors.New("itemName contains invalid characters")
)

// BlobRef addresses one image blob: Container/Name.
type BlobRef struct {
	Container string
	ItemName  string
	Name      string
}

// NewBlobRef derives the blob for itemName. The name is itemName followed by
// suffix, byte for byte. In strict mode itemName must pass SafeItemName.
func NewBlobRef(container, itemName, suffix string, strict bool) (BlobRef, error) {
	if strings.TrimSpace(itemName) == "" {
		return BlobRef{}, ErrItemNameRequired
	}

	if strict && !SafeItemName(itemName) {
		return BlobRef{}, ErrItemNameUnsafe
	}

	return BlobRef{
		Container: container,
		ItemName:  itemName,
		Name:      BlobName(itemName, suffix),
	}, nil
}

func BlobName(itemName, suffix string) string {
	return itemName + suffix
}

// SafeItemName reports whether name only uses letters, digits, spaces and
// -_.,'&() and cannot be read as a relative path.
func SafeItemName(name string) bool {
	if len(name) > MaxItemNameLength {
		return false
	}

	if strings.HasPrefix(name, ".") || strings.Contains(name, "..") {
		return false
	}

	for _, r := range name {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
		case r == ' ', r == '-', r == '_', r == '.', r == ',', r == '\'', r == '&', r == '(', r == ')':
		default:
			return false
		}
	}

	return true
}
