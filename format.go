package strbuild

// Formatter is implemented by values that can write their text
// representation into a caller-provided region. FormatInto reports the
// number of bytes written and whether the region was large enough; on
// ok == false the region contents are discarded and a larger one is
// offered.
type Formatter interface {
	FormatInto(dst []byte) (n int, ok bool)
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(dst []byte) (n int, ok bool)

func (f FormatterFunc) FormatInto(dst []byte) (n int, ok bool) {
	return f(dst)
}

// formatReservation is the initial region offered to a Formatter; most
// representations fit on the first try.
const formatReservation = 32

// AppendFormatted appends the text representation of v. The region offered
// to v starts at 32 bytes and doubles after every failed attempt, growing
// the buffer as needed; the cursor only advances once v reports success, so
// a failed attempt leaves no partial output behind. A formatter that never
// succeeds hits the MaxCapacity ceiling and panics with ErrTooLarge.
func (b *Builder) AppendFormatted(v Formatter) error {
	if err := b.ensureActive("AppendFormatted"); err != nil {
		return err
	}

	reservation := formatReservation
	for {
		b.reserve(reservation)

		n, ok := v.FormatInto(b.buf[b.length : b.length+reservation])
		if ok {
			if n < 0 || n > reservation {
				panic("strbuild: formatter reported a length outside its region")
			}
			b.length += n
			return nil
		}

		if reservation > MaxCapacity/2 {
			panic(ErrTooLarge)
		}
		reservation *= 2
	}
}
