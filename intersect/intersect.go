package intersect

// gallopRatio is the length skew at which Size switches from the linear
// merge to galloping search. Chosen empirically: below ~16x the merge's
// sequential access wins, above it the log-time skips dominate.
const gallopRatio = 16

// Size returns the intersection cardinality of two ascending id slices.
//
// Inputs must be sorted ascending with unique ids; unsorted input yields
// an unspecified count (never a panic). Runs in O(len(a)+len(b)) via a
// two-pointer merge, or O(min*log(max)) galloping when one side is much
// shorter than the other.
func Size(a, b []uint32) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return 0
	}
	if len(b) >= gallopRatio*len(a) {
		return sizeGalloping(a, b)
	}
	return sizeMerge(a, b)
}

// Size3 returns the cardinality of the three-way intersection of
// ascending id slices. Same sortedness contract as Size.
func Size3(a, b, c []uint32) int {
	var i, j, k, n int
	for i < len(a) && j < len(b) && k < len(c) {
		va, vb, vc := a[i], b[j], c[k]
		if va == vb && vb == vc {
			n++
			i++
			j++
			k++
			continue
		}
		// Advance every pointer sitting at the current minimum.
		m := min(va, vb, vc)
		if va == m {
			i++
		}
		if vb == m {
			j++
		}
		if vc == m {
			k++
		}
	}
	return n
}

func sizeMerge(a, b []uint32) int {
	var i, j, n int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}

// sizeGalloping walks the short side and locates each id in the long side
// with exponential probing followed by binary search. The long-side cursor
// only moves forward, so the total work stays sublinear in len(b).
func sizeGalloping(short, long []uint32) int {
	var n, lo int
	for _, id := range short {
		if lo >= len(long) {
			break
		}
		// Exponential probe to bracket id.
		hi := lo + 1
		for hi < len(long) && long[hi] < id {
			lo = hi
			hi = min(2*hi, len(long))
		}
		// Binary search in [lo, hi).
		for lo < hi {
			mid := int(uint(lo+hi) >> 1)
			if long[mid] < id {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo < len(long) && long[lo] == id {
			n++
			lo++
		}
	}
	return n
}
