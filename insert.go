package strbuild

// InsertByte inserts c at index, shifting the tail right by one. The index
// must lie in [0, Len()].
func (b *Builder) InsertByte(index int, c byte) error {
	if err := b.ensureActive("InsertByte"); err != nil {
		return err
	}

	if index < 0 || index > b.length {
		return &RangeError{Op: "InsertByte", Index: index, Length: b.length}
	}

	b.reserve(1)
	copy(b.buf[index+1:b.length+1], b.buf[index:b.length])
	b.buf[index] = c
	b.length++
	return nil
}

// InsertString inserts s at index, shifting the tail right to make room.
// The index must lie in [0, Len()]; an empty string is a no-op.
func (b *Builder) InsertString(index int, s string) error {
	if err := b.ensureActive("InsertString"); err != nil {
		return err
	}

	if index < 0 || index > b.length {
		return &RangeError{Op: "InsertString", Index: index, Length: b.length}
	}

	if s == "" {
		return nil
	}

	b.reserve(len(s))
	// copy has memmove semantics, so shifting the overlapping tail in a
	// single call is safe.
	copy(b.buf[index+len(s):b.length+len(s)], b.buf[index:b.length])
	copy(b.buf[index:], s)
	b.length += len(s)
	return nil
}

// InsertBytes inserts p at index, shifting the tail right to make room.
// The index must lie in [0, Len()]; a nil or empty slice is a no-op.
func (b *Builder) InsertBytes(index int, p []byte) error {
	if err := b.ensureActive("InsertBytes"); err != nil {
		return err
	}

	if index < 0 || index > b.length {
		return &RangeError{Op: "InsertBytes", Index: index, Length: b.length}
	}

	if len(p) == 0 {
		return nil
	}

	b.reserve(len(p))
	copy(b.buf[index+len(p):b.length+len(p)], b.buf[index:b.length])
	copy(b.buf[index:], p)
	b.length += len(p)
	return nil
}
