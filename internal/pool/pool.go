// Package pool provides bucketed sync.Pool instances for reducing allocations
// in hot paths. Slices are organized by element-count class to minimize
// waste, and Of wraps a pool of fixed-size objects.
package pool

import "sync"

// Size classes, in elements. The largest covers a 64x64 transform block.
const (
	Size16   = 16
	Size64   = 64
	Size256  = 256
	Size1K   = 1024
	Size4K   = 4096
	numClass = 5
)

var sizes = [numClass]int{Size16, Size64, Size256, Size1K, Size4K}

// bucketIndex returns the pool index for a given length.
func bucketIndex(n int) int {
	switch {
	case n <= Size16:
		return 0
	case n <= Size64:
		return 1
	case n <= Size256:
		return 2
	case n <= Size1K:
		return 3
	default:
		return 4
	}
}

type buckets[T any] struct {
	pools [numClass]sync.Pool
}

func newBuckets[T any]() *buckets[T] {
	b := &buckets[T]{}
	for i := range b.pools {
		sz := sizes[i]
		b.pools[i].New = func() any {
			s := make([]T, sz)
			return &s
		}
	}
	return b
}

func (b *buckets[T]) get(n int) []T {
	sp := b.pools[bucketIndex(n)].Get().(*[]T)
	s := *sp
	if cap(s) < n {
		s = make([]T, n)
		*sp = s
		return s
	}
	return s[:n]
}

func (b *buckets[T]) put(s []T) {
	c := cap(s)
	if c < Size16 {
		return
	}
	idx := bucketIndex(c)
	if c < sizes[idx] {
		// Not from this pool's classes; keep only what fits the class below.
		if idx == 0 {
			return
		}
		idx--
	}
	s = s[:c]
	b.pools[idx].Put(&s)
}

var (
	int16s = newBuckets[int16]()
	int32s = newBuckets[int32]()
)

// GetInt16 returns an int16 slice of the requested length. Its contents are
// undefined. The caller should call PutInt16 when done.
func GetInt16(length int) []int16 {
	return int16s.get(length)
}

// PutInt16 returns a slice obtained from GetInt16 to the pool.
func PutInt16(s []int16) {
	int16s.put(s)
}

// GetInt32 returns an int32 slice of the requested length. Its contents are
// undefined.
func GetInt32(length int) []int32 {
	return int32s.get(length)
}

// PutInt32 returns a slice obtained from GetInt32 to the pool.
func PutInt32(s []int32) {
	int32s.put(s)
}

// Of is a typed pool of reusable objects.
type Of[T any] struct {
	p sync.Pool
}

// NewOf returns a pool that allocates with newFn when empty.
func NewOf[T any](newFn func() *T) *Of[T] {
	o := &Of[T]{}
	o.p.New = func() any { return newFn() }
	return o
}

// Get returns an object from the pool. Its state is whatever the last user
// left behind.
func (o *Of[T]) Get() *T {
	return o.p.Get().(*T)
}

// Put returns v to the pool.
func (o *Of[T]) Put(v *T) {
	if v != nil {
		o.p.Put(v)
	}
}
