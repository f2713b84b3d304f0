package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlobRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		itemName    string
		strict      bool
		expected    string
		expectedErr error
	}{
		{name: "plain", itemName: "pizza", strict: true, expected: "pizza.png"},
		{name: "spaces kept", itemName: "Chicken Curry", strict: true, expected: "Chicken Curry.png"},
		{name: "surrounding spaces kept", itemName: " pizza ", strict: true, expected: " pizza .png"},
		{name: "unicode", itemName: "crème brûlée", strict: true, expected: "crème brûlée.png"},
		{name: "punctuation", itemName: "mac & cheese (large), kid's", strict: true, expected: "mac & cheese (large), kid's.png"},
		{name: "empty", itemName: "", strict: true, expectedErr: ErrItemNameRequired},
		{name: "whitespace", itemName: " \t\n", strict: true, expectedErr: ErrItemNameRequired},
		{name: "whitespace lax", itemName: "   ", strict: false, expectedErr: ErrItemNameRequired},
		{name: "slash", itemName: "menu/pizza", strict: true, expectedErr: ErrItemNameUnsafe},
		{name: "backslash", itemName: `menu\pizza`, strict: true, expectedErr: ErrItemNameUnsafe},
		{name: "traversal", itemName: "..", strict: true, expectedErr: ErrItemNameUnsafe},
		{name: "hidden", itemName: ".pizza", strict: true, expectedErr: ErrItemNameUnsafe},
		{name: "query chars", itemName: "pizza?x=1", strict: true, expectedErr: ErrItemNameUnsafe},
		{name: "too long", itemName: strings.Repeat("a", MaxItemNameLength+1), strict: true, expectedErr: ErrItemNameUnsafe},
		{name: "lax keeps slash", itemName: "menu/pizza", strict: false, expected: "menu/pizza.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ref, err := NewBlobRef("food-images", tt.itemName, ".png", tt.strict)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "food-images", ref.Container)
			assert.Equal(t, tt.itemName, ref.ItemName)
			assert.Equal(t, tt.expected, ref.Name)
		})
	}
}

func TestBlobNameDeterministic(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		assert.Equal(t, "pizza.png", BlobName("pizza", ".png"))
	}
}
