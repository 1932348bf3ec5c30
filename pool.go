package strbuild

import (
	"math/bits"
	"sync"
)

// Pool lends reusable byte buffers and reclaims them when a builder is done
// with them. Implementations must be safe for concurrent use; the builder
// itself never shares a rented buffer.
type Pool interface {
	// Rent returns a buffer whose length is at least minSize. The caller
	// owns the buffer until it is passed back to Return.
	Rent(minSize int) []byte

	// Return hands a buffer back to the pool. When clear is set the
	// buffer contents are zeroed before the buffer can be lent again.
	Return(buf []byte, clear bool)
}

const (
	// minClassSize is the smallest bucket size handed out by the shared
	// pool. Smaller rent requests are rounded up.
	minClassSize = 128

	// maxPooledSize caps the buffers kept for reuse. Larger buffers are
	// still rented but dropped on return so a single oversized build does
	// not pin memory for the lifetime of the process.
	maxPooledSize = 1 << 20

	numClasses = 14 // 128 .. 1<<20
)

// bucketedPool keeps one sync.Pool per power-of-two size class, so returning
// a large buffer never degrades reuse of the small ones.
type bucketedPool struct {
	classes [numClasses]sync.Pool
}

var shared = newBucketedPool()

// SharedPool returns the process-wide buffer pool used by zero-value
// builders and by New when no Pool is configured.
func SharedPool() Pool {
	return shared
}

func newBucketedPool() *bucketedPool {
	p := &bucketedPool{}
	for i := range p.classes {
		size := minClassSize << i
		p.classes[i].New = func() interface{} {
			b := make([]byte, size)
			return &b
		}
	}
	return p
}

func (p *bucketedPool) Rent(minSize int) []byte {
	if minSize < 1 {
		minSize = 1
	}
	if minSize > maxPooledSize {
		return make([]byte, minSize)
	}

	idx := classIndex(minSize)
	buf := *p.classes[idx].Get().(*[]byte)
	return buf[:cap(buf)]
}

func (p *bucketedPool) Return(buf []byte, clear bool) {
	if cap(buf) == 0 {
		return
	}

	buf = buf[:cap(buf)]
	if clear {
		for i := range buf {
			buf[i] = 0
		}
	}

	// Only buffers that still match a class exactly go back; anything
	// else would shrink the guarantee Rent makes for its class.
	c := cap(buf)
	if c < minClassSize || c > maxPooledSize || c&(c-1) != 0 {
		return
	}

	p.classes[classIndex(c)].Put(&buf)
}

// classIndex maps a size in [1, maxPooledSize] to the smallest class that
// can hold it.
func classIndex(size int) int {
	if size <= minClassSize {
		return 0
	}
	return bits.Len(uint(size-1)) - 7
}
