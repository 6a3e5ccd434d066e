package intersect

import "github.com/RoaringBitmap/roaring/v2"

// Bitmap materializes a sorted id slice as a roaring bitmap.
//
// Building a bitmap costs more than one merge intersection, so this only
// pays off when the same id set is intersected against many others (e.g.
// one query object probed against an index partition).
func Bitmap(ids []uint32) *roaring.Bitmap {
	rb := roaring.New()
	rb.AddMany(ids)
	return rb
}

// SizeBitmap returns the intersection cardinality of two prebuilt bitmaps
// without materializing the intersection.
func SizeBitmap(a, b *roaring.Bitmap) int {
	return int(a.AndCardinality(b))
}

// SizeBitmap3 returns the three-way intersection cardinality of prebuilt
// bitmaps.
func SizeBitmap3(a, b, c *roaring.Bitmap) int {
	return int(roaring.FastAnd(a, b, c).GetCardinality())
}

// SizeSorted counts how many ids from a sorted slice are present in rb.
// Useful when one side is a long-lived bitmap and the other is freshly
// decoded.
func SizeSorted(rb *roaring.Bitmap, ids []uint32) int {
	n := 0
	for _, id := range ids {
		if rb.Contains(id) {
			n++
		}
	}
	return n
}
