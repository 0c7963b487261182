package buffer

import "strconv"

// Worst-case rendering widths reserved before each formatted append.
const (
	widthU8  = 5
	widthI8  = 5
	widthU32 = 12
	widthI32 = 32
	widthF32 = 32
)

// PutU8 appends v in base 10, preceded by a space unless the buffer is empty.
func (b *Buffer) PutU8(v uint8) error {
	return b.putValue(widthU8, func(dst []byte) []byte {
		return strconv.AppendUint(dst, uint64(v), 10)
	})
}

// PutI8 appends v in base 10 with the same separator rule as PutU8.
func (b *Buffer) PutI8(v int8) error {
	return b.putValue(widthI8, func(dst []byte) []byte {
		return strconv.AppendInt(dst, int64(v), 10)
	})
}

// PutU32 appends v in base 10.
func (b *Buffer) PutU32(v uint32) error {
	return b.putValue(widthU32, func(dst []byte) []byte {
		return strconv.AppendUint(dst, uint64(v), 10)
	})
}

// PutI32 appends v in base 10.
func (b *Buffer) PutI32(v int32) error {
	return b.putValue(widthI32, func(dst []byte) []byte {
		return strconv.AppendInt(dst, int64(v), 10)
	})
}

// PutF32 appends v in fixed point with six fractional digits. The value is
// widened to float64 first, so 0.1 renders as 0.100000.
func (b *Buffer) PutF32(v float32) error {
	return b.putValue(widthF32, func(dst []byte) []byte {
		return strconv.AppendFloat(dst, float64(v), 'f', 6, 64)
	})
}

// PutStr appends s verbatim. Unlike the numeric appenders it never inserts a
// separator.
func (b *Buffer) PutStr(s string) error {
	return b.putString(s)
}

func (b *Buffer) putValue(width int, render func([]byte) []byte) error {
	if err := b.Reserve(width); err != nil {
		return err
	}
	var scratch [48]byte
	out := scratch[:0]
	if b.size > 0 {
		out = append(out, ' ')
	}
	return b.Put(render(out))
}
