package importer

import "fmt"

// BarcodeAllocator hands out the smallest free six digit barcode of a library.
// Every barcode it returns or is told about is reserved for the rest of the
// job.
type BarcodeAllocator struct {
	taken map[string]struct{}
	// every candidate below next is taken
	next int
}

func NewBarcodeAllocator(existing []string) *BarcodeAllocator {
	taken := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		taken[b] = struct{}{}
	}
	return &BarcodeAllocator{taken: taken}
}

func (a *BarcodeAllocator) Taken(barcode string) bool {
	_, ok := a.taken[barcode]
	return ok
}

func (a *BarcodeAllocator) Reserve(barcode string) {
	a.taken[barcode] = struct{}{}
}

// Next returns the first zero-padded barcode from 000000 upwards that is not
// taken, and reserves it.
func (a *BarcodeAllocator) Next() string {
	for {
		candidate := fmt.Sprintf("%06d", a.next)
		a.next++
		if _, ok := a.taken[candidate]; ok {
			continue
		}
		a.taken[candidate] = struct{}{}
		return candidate
	}
}
