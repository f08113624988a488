package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarcodeAllocator_Next(t *testing.T) {
	t.Run("skips seeded barcodes", func(t *testing.T) {
		a := NewBarcodeAllocator([]string{"000000", "000001"})
		assert.Equal(t, "000002", a.Next())
		assert.Equal(t, "000003", a.Next())
	})

	t.Run("empty library starts at zero", func(t *testing.T) {
		a := NewBarcodeAllocator(nil)
		assert.Equal(t, "000000", a.Next())
	})

	t.Run("fills gaps", func(t *testing.T) {
		a := NewBarcodeAllocator([]string{"000000", "000002"})
		assert.Equal(t, "000001", a.Next())
		assert.Equal(t, "000003", a.Next())
	})

	t.Run("non numeric barcodes do not block", func(t *testing.T) {
		a := NewBarcodeAllocator([]string{"T 32889", "ABC"})
		assert.Equal(t, "000000", a.Next())
	})

	t.Run("reserved barcodes are skipped", func(t *testing.T) {
		a := NewBarcodeAllocator(nil)
		a.Reserve("000000")
		a.Reserve("000001")
		assert.Equal(t, "000002", a.Next())
	})
}

func TestBarcodeAllocator_NeverRepeats(t *testing.T) {
	a := NewBarcodeAllocator([]string{"000003", "000007"})
	seen := map[string]bool{"000003": true, "000007": true}
	for range 50 {
		b := a.Next()
		assert.False(t, seen[b], "barcode %s returned twice", b)
		assert.Len(t, b, 6)
		assert.True(t, a.Taken(b))
		seen[b] = true
	}
}

func TestBarcodeAllocator_Taken(t *testing.T) {
	a := NewBarcodeAllocator([]string{"T 32889"})
	assert.True(t, a.Taken("T 32889"))
	assert.False(t, a.Taken("000000"))

	a.Reserve("000000")
	assert.True(t, a.Taken("000000"))
}
