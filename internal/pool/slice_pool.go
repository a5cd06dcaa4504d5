package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice returns a pooled float64 slice of length size.
//
// The contents are unspecified. The caller must call the returned cleanup
// function, typically with defer, once the slice is no longer referenced.
//
// Example:
//
//	scratch, cleanup := pool.GetFloat64Slice(len(values))
//	defer cleanup()
//	copy(scratch, values)
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
