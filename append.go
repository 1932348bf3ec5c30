package strbuild

import (
	"strconv"
	"unicode/utf8"
)

// Worst-case decimal widths, sign included, used to size the in-place
// numeric formatting reservations.
const (
	maxInt32Width  = 11 // -2147483648
	maxInt64Width  = 20 // -9223372036854775808
	maxUint32Width = 10 // 4294967295
	maxUint64Width = 20 // 18446744073709551615
)

// AppendByte appends a single byte.
func (b *Builder) AppendByte(c byte) error {
	if err := b.ensureActive("AppendByte"); err != nil {
		return err
	}

	b.reserve(1)
	b.buf[b.length] = c
	b.length++
	return nil
}

// AppendByte2 appends two bytes without a bulk copy.
func (b *Builder) AppendByte2(c0, c1 byte) error {
	if err := b.ensureActive("AppendByte2"); err != nil {
		return err
	}

	b.reserve(2)
	b.buf[b.length] = c0
	b.buf[b.length+1] = c1
	b.length += 2
	return nil
}

// AppendByte3 appends three bytes without a bulk copy.
func (b *Builder) AppendByte3(c0, c1, c2 byte) error {
	if err := b.ensureActive("AppendByte3"); err != nil {
		return err
	}

	b.reserve(3)
	b.buf[b.length] = c0
	b.buf[b.length+1] = c1
	b.buf[b.length+2] = c2
	b.length += 3
	return nil
}

// AppendString appends s. An empty string is a no-op, but still fails on a
// disposed builder.
func (b *Builder) AppendString(s string) error {
	if err := b.ensureActive("AppendString"); err != nil {
		return err
	}

	if s == "" {
		return nil
	}

	b.reserve(len(s))
	copy(b.buf[b.length:], s)
	b.length += len(s)
	return nil
}

// AppendBytes appends p. A nil or empty slice is a no-op, but still fails
// on a disposed builder.
func (b *Builder) AppendBytes(p []byte) error {
	if err := b.ensureActive("AppendBytes"); err != nil {
		return err
	}

	if len(p) == 0 {
		return nil
	}

	b.reserve(len(p))
	copy(b.buf[b.length:], p)
	b.length += len(p)
	return nil
}

// AppendRune appends the UTF-8 encoding of r.
func (b *Builder) AppendRune(r rune) error {
	if err := b.ensureActive("AppendRune"); err != nil {
		return err
	}

	if r < utf8.RuneSelf {
		b.reserve(1)
		b.buf[b.length] = byte(r)
		b.length++
		return nil
	}

	b.reserve(utf8.UTFMax)
	n := utf8.EncodeRune(b.buf[b.length:b.length+utf8.UTFMax], r)
	b.length += n
	return nil
}

// AppendRepeat appends count copies of c. A non-positive count is a no-op.
func (b *Builder) AppendRepeat(c byte, count int) error {
	if err := b.ensureActive("AppendRepeat"); err != nil {
		return err
	}

	if count <= 0 {
		return nil
	}

	b.reserve(count)
	region := b.buf[b.length : b.length+count]
	for i := range region {
		region[i] = c
	}
	b.length += count
	return nil
}

// AppendSpan reserves a writable region of exactly length bytes, advances
// the cursor past it, and returns it for the caller to fill directly. The
// region is only valid until the next mutating call. A non-positive length
// returns an empty region.
func (b *Builder) AppendSpan(length int) ([]byte, error) {
	if err := b.ensureActive("AppendSpan"); err != nil {
		return nil, err
	}

	if length <= 0 {
		return b.buf[b.length:b.length], nil
	}

	b.reserve(length)
	region := b.buf[b.length : b.length+length]
	b.length += length
	return region, nil
}

// AppendNewline appends a single '\n'.
func (b *Builder) AppendNewline() error {
	return b.AppendByte('\n')
}

// AppendLine appends s followed by '\n'.
func (b *Builder) AppendLine(s string) error {
	if err := b.ensureActive("AppendLine"); err != nil {
		return err
	}

	b.reserve(len(s) + 1)
	copy(b.buf[b.length:], s)
	b.length += len(s)
	b.buf[b.length] = '\n'
	b.length++
	return nil
}

// AppendSeparatorIfNotEmpty appends sep only when something has already
// been written, so joining loops never produce a leading separator.
func (b *Builder) AppendSeparatorIfNotEmpty(sep byte) error {
	if err := b.ensureActive("AppendSeparatorIfNotEmpty"); err != nil {
		return err
	}

	if b.length == 0 {
		return nil
	}

	b.reserve(1)
	b.buf[b.length] = sep
	b.length++
	return nil
}

// AppendInt appends the decimal representation of v.
func (b *Builder) AppendInt(v int32) error {
	if err := b.ensureActive("AppendInt"); err != nil {
		return err
	}

	b.appendInt64(int64(v), maxInt32Width)
	return nil
}

// AppendInt64 appends the decimal representation of v.
func (b *Builder) AppendInt64(v int64) error {
	if err := b.ensureActive("AppendInt64"); err != nil {
		return err
	}

	b.appendInt64(v, maxInt64Width)
	return nil
}

// AppendUint appends the decimal representation of v.
func (b *Builder) AppendUint(v uint32) error {
	if err := b.ensureActive("AppendUint"); err != nil {
		return err
	}

	b.appendUint64(uint64(v), maxUint32Width)
	return nil
}

// AppendUint64 appends the decimal representation of v.
func (b *Builder) AppendUint64(v uint64) error {
	if err := b.ensureActive("AppendUint64"); err != nil {
		return err
	}

	b.appendUint64(v, maxUint64Width)
	return nil
}

// appendInt64 reserves the worst-case width for the source type, formats in
// place with strconv, and advances by the width actually produced.
func (b *Builder) appendInt64(v int64, width int) {
	b.reserve(width)
	out := strconv.AppendInt(b.buf[b.length:b.length], v, 10)
	if len(out) > width {
		// strconv wrote past a worst-case reservation; the cursor
		// math is broken and nothing written after this point can be
		// trusted.
		panic("strbuild: integer formatting overran its reservation")
	}
	b.length += len(out)
}

func (b *Builder) appendUint64(v uint64, width int) {
	b.reserve(width)
	out := strconv.AppendUint(b.buf[b.length:b.length], v, 10)
	if len(out) > width {
		panic("strbuild: integer formatting overran its reservation")
	}
	b.length += len(out)
}
