// Package strbuild provides a short-lived string builder whose backing
// buffer is borrowed from a reusable buffer pool instead of allocated per
// build. It is a lower-allocation alternative to strings.Builder for code
// that assembles many transient strings.
package strbuild

import (
	"context"
	"math/bits"
	"time"

	"dario.cat/mergo"
)

const (
	// DefaultCapacity is the size of the buffer rented when a zero-value
	// builder is first written to.
	DefaultCapacity = 128

	// MaxCapacity is the largest backing buffer a builder will ever
	// request. Growth beyond it panics with ErrTooLarge.
	MaxCapacity = 1 << 30
)

type lifecycleState int

const (
	stateUninitialized lifecycleState = iota
	stateActive
	stateDisposed
)

// Builder is a mutable byte sequence backed by a pooled buffer.
//
// The zero value is ready to use and rents its buffer from SharedPool on
// first write. Use New to pick the initial capacity, the pool, or the
// observability hooks.
//
// Thread Safety: a Builder is single-owner. It must not be shared between
// goroutines, stored in long-lived state, or used after Dispose. The pool
// behind it is safe for concurrent use; the Builder adds no locking of its
// own because it never shares its buffer.
type Builder struct {
	noCopy noCopy

	buf    []byte
	length int
	state  lifecycleState

	pool    Pool
	logger  Logger
	metrics MetricsCollector

	grows   int
	peakCap int
	started time.Time
}

var defaultConfig = Config{
	InitialCapacity: DefaultCapacity,
}

// New returns an Active builder holding a rented buffer of at least
// config.InitialCapacity bytes.
func New(config Config) (*Builder, error) {
	if err := mergo.Merge(&config, defaultConfig); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	b := &Builder{
		pool:    config.Pool,
		logger:  config.Logger,
		metrics: config.MetricsCollector,
	}

	if b.pool == nil {
		b.pool = SharedPool()
	}
	if b.logger == nil {
		b.logger = newNoopLogger()
	}

	b.attach(config.InitialCapacity)

	return b, nil
}

// attach rents the first buffer and moves the builder to Active.
func (b *Builder) attach(capacity int) {
	if b.pool == nil {
		b.pool = SharedPool()
	}
	if b.logger == nil {
		b.logger = newNoopLogger()
	}

	b.buf = b.pool.Rent(capacity)
	b.length = 0
	b.state = stateActive
	b.peakCap = cap(b.buf)
	b.started = time.Now()

	if !b.logger.IsNoop() {
		b.logger.Debug(context.Background(), "buffer rented", map[string]interface{}{
			"requested": capacity,
			"capacity":  cap(b.buf),
		})
	}
}

// ensureActive is the entry check shared by every operation: it lazily
// activates a zero-value builder and rejects a disposed one.
func (b *Builder) ensureActive(op string) error {
	switch b.state {
	case stateActive:
		return nil
	case stateUninitialized:
		b.attach(DefaultCapacity)
		return nil
	default:
		return &StateError{Op: op}
	}
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return b.length
}

// Cap returns the capacity of the currently rented buffer, or 0 when no
// buffer is owned.
func (b *Builder) Cap() int {
	return cap(b.buf)
}

// EnsureCapacity grows the backing buffer so that at least required bytes
// fit without another rent. It is a no-op when the current buffer is already
// large enough.
func (b *Builder) EnsureCapacity(required int) error {
	if err := b.ensureActive("EnsureCapacity"); err != nil {
		return err
	}

	if required <= cap(b.buf) {
		return nil
	}

	b.grow(required)
	return nil
}

// reserve guarantees room for n more bytes past the cursor.
func (b *Builder) reserve(n int) {
	if n > MaxCapacity-b.length {
		panic(ErrTooLarge)
	}
	if b.length+n <= cap(b.buf) {
		return
	}
	b.grow(b.length + n)
}

// grow replaces the buffer with one whose capacity is the smallest power of
// two that holds required bytes, preserving the written prefix. The old
// buffer goes back to the pool unclear: its live region has been copied out
// and the rest was never written.
func (b *Builder) grow(required int) {
	if required > MaxCapacity {
		panic(ErrTooLarge)
	}

	newCap := nextPowerOfTwo(required)
	if newCap > MaxCapacity {
		newCap = MaxCapacity
	}

	newBuf := b.pool.Rent(newCap)
	copy(newBuf, b.buf[:b.length])
	b.pool.Return(b.buf, false)
	b.buf = newBuf

	b.grows++
	if cap(b.buf) > b.peakCap {
		b.peakCap = cap(b.buf)
	}

	if !b.logger.IsNoop() {
		b.logger.Debug(context.Background(), "buffer grown", map[string]interface{}{
			"required": required,
			"capacity": cap(b.buf),
			"length":   b.length,
		})
	}
}

// Clear resets the cursor to zero. The buffer is kept at its current
// capacity so the builder can be reused for another build cycle.
func (b *Builder) Clear() error {
	if err := b.ensureActive("Clear"); err != nil {
		return err
	}

	b.length = 0
	return nil
}

// Shrink removes count bytes from the tail. A non-positive count is a
// no-op; a count at or beyond the current length empties the builder.
func (b *Builder) Shrink(count int) error {
	if err := b.ensureActive("Shrink"); err != nil {
		return err
	}

	if count <= 0 {
		return nil
	}
	if count >= b.length {
		b.length = 0
		return nil
	}
	b.length -= count
	return nil
}

// String returns a copy of the built text. The builder stays Active and can
// keep appending.
func (b *Builder) String() (string, error) {
	if err := b.ensureActive("String"); err != nil {
		return "", err
	}

	return string(b.buf[:b.length]), nil
}

// Bytes returns the written region of the backing buffer. The slice is only
// valid until the next mutating call or disposal; callers that need to keep
// the data must copy it.
func (b *Builder) Bytes() ([]byte, error) {
	if err := b.ensureActive("Bytes"); err != nil {
		return nil, err
	}

	return b.buf[:b.length], nil
}

// StringAndDispose returns a copy of the built text and disposes the
// builder, returning the buffer to the pool. Set clear when the text may
// contain sensitive data so the pool zeroes the buffer before lending it to
// an unrelated caller.
func (b *Builder) StringAndDispose(clear bool) (string, error) {
	if b.state == stateDisposed {
		return "", &StateError{Op: "StringAndDispose"}
	}

	s := string(b.buf[:b.length])
	b.dispose(clear)
	return s, nil
}

// Dispose returns the buffer to the pool and makes the builder terminal.
// A second Dispose is a no-op: the buffer must never reach the pool twice.
func (b *Builder) Dispose() {
	b.dispose(false)
}

func (b *Builder) dispose(clear bool) {
	if b.state == stateDisposed {
		return
	}

	if b.state == stateActive {
		b.recordBuild()

		if !b.logger.IsNoop() {
			b.logger.Debug(context.Background(), "buffer returned", map[string]interface{}{
				"length":   b.length,
				"capacity": cap(b.buf),
				"cleared":  clear,
			})
		}

		b.pool.Return(b.buf, clear)
	}

	b.buf = nil
	b.length = 0
	b.state = stateDisposed
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// noCopy makes `go vet` report builders copied by value; a copy would give
// two handles exclusive ownership of one rented buffer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
