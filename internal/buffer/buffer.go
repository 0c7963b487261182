package buffer

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// InitialCapacity is the storage allocated by New and Init.
const InitialCapacity = 4096

// Buffer is an append-only byte accumulator. Storage grows by doubling and is
// never shared with callers beyond the views returned by Bytes.
//
// The zero value is usable: the first append allocates InitialCapacity bytes.
type Buffer struct {
	data     []byte // len(data) is the capacity
	size     int
	initial  int
	max      int
	strict   bool
	released bool
	log      *zerolog.Logger
}

type Option func(*Buffer)

// WithInitialCapacity overrides InitialCapacity for this buffer.
func WithInitialCapacity(n int) Option {
	return func(b *Buffer) {
		b.initial = n
	}
}

// WithMaxCapacity bounds growth. Zero means unbounded.
func WithMaxCapacity(n int) Option {
	return func(b *Buffer) {
		b.max = n
	}
}

// WithStrict makes allocation and handle failures panic after they are logged.
func WithStrict(strict bool) Option {
	return func(b *Buffer) {
		b.strict = strict
	}
}

// WithLogger attaches the logger for growth and failure events.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Buffer) {
		b.log = &l
	}
}

// New allocates a buffer with the initial capacity. On failure the returned
// buffer is nil.
func New(opts ...Option) (*Buffer, error) {
	b := &Buffer{initial: InitialCapacity}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.alloc(); err != nil {
		return nil, err
	}
	return b, nil
}

// Init (re)allocates the initial storage in place, discarding any content.
func (b *Buffer) Init() error {
	if b == nil {
		return ErrInvalidHandle
	}
	return b.alloc()
}

func (b *Buffer) alloc() error {
	if b.initial == 0 {
		b.initial = InitialCapacity
	}
	if b.initial < 0 || (b.max > 0 && b.initial > b.max) {
		return b.fail(fmt.Errorf("%w: initial capacity %d (max %d)", ErrAllocation, b.initial, b.max))
	}
	b.data = make([]byte, b.initial)
	b.size = 0
	b.released = false
	return nil
}

// Reset logically erases the content. Storage and capacity are kept.
func (b *Buffer) Reset() error {
	if b == nil {
		return ErrInvalidHandle
	}
	b.size = 0
	return nil
}

// Release drops the storage. It is idempotent; appends after Release fail with
// ErrReleased until Init is called.
func (b *Buffer) Release() error {
	if b == nil {
		return ErrInvalidHandle
	}
	b.data = nil
	b.size = 0
	b.released = true
	return nil
}

// Reserve guarantees room for additional bytes past the current size by
// doubling the capacity. Existing content is preserved across growth.
func (b *Buffer) Reserve(additional int) error {
	if b == nil {
		return ErrInvalidHandle
	}
	if b.released {
		return b.fail(ErrReleased)
	}
	if additional < 0 {
		return b.fail(fmt.Errorf("%w: %d", ErrNegativeSize, additional))
	}
	if b.data == nil {
		if err := b.alloc(); err != nil {
			return err
		}
	}
	if additional > math.MaxInt-b.size {
		return b.fail(fmt.Errorf("%w: size overflow", ErrAllocation))
	}
	need := b.size + additional
	capacity := len(b.data)
	if need <= capacity {
		return nil
	}
	for capacity < need {
		if capacity > math.MaxInt/2 {
			return b.fail(fmt.Errorf("%w: capacity overflow", ErrAllocation))
		}
		capacity *= 2
	}
	if b.max > 0 && capacity > b.max {
		if need > b.max {
			return b.fail(fmt.Errorf("%w: need %d bytes, max %d", ErrAllocation, need, b.max))
		}
		capacity = b.max
	}

	grown := make([]byte, capacity)
	copy(grown, b.data[:b.size])
	b.logger().Debug().
		Int("from", len(b.data)).
		Int("to", capacity).
		Int("size", b.size).
		Msg("buffer grown")
	b.data = grown
	return nil
}

// Put appends p.
func (b *Buffer) Put(p []byte) error {
	if err := b.Reserve(len(p)); err != nil {
		return err
	}
	b.size += copy(b.data[b.size:], p)
	return nil
}

// PutByte appends a single byte.
func (b *Buffer) PutByte(c byte) error {
	if err := b.Reserve(1); err != nil {
		return err
	}
	b.data[b.size] = c
	b.size++
	return nil
}

func (b *Buffer) putString(s string) error {
	if err := b.Reserve(len(s)); err != nil {
		return err
	}
	b.size += copy(b.data[b.size:], s)
	return nil
}

// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.Put(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteByte implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	return b.PutByte(c)
}

// WriteString implements io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) {
	if err := b.putString(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// Size returns the number of bytes written since the last Reset.
func (b *Buffer) Size() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Cap returns the allocated capacity.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Released reports whether Release was called and no Init followed.
func (b *Buffer) Released() bool {
	return b != nil && b.released
}

// Bytes returns a view of the content. It is valid until the next append,
// Reset or Release.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.data == nil {
		return nil
	}
	return b.data[:b.size]
}

func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.Bytes())
}

func (b *Buffer) fail(err error) error {
	b.logger().Error().
		Err(err).
		Int("size", b.size).
		Int("capacity", len(b.data)).
		Bool("strict", b.strict).
		Msg("buffer operation failed")
	if b.strict {
		panic(err)
	}
	return err
}

func (b *Buffer) logger() *zerolog.Logger {
	if b.log == nil {
		nop := zerolog.Nop()
		b.log = &nop
	}
	return b.log
}
