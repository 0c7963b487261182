package args

// Handle is an opaque function or component handle produced by a Resolver.
type Handle = any

// Value is one slot of the positional value array. The set of kinds is
// closed: only the types declared in this file implement it.
type Value interface {
	Kind() Kind
	value()
}

// Kind tags the concrete type held by a Value slot.
type Kind uint8

const (
	KindNone Kind = iota
	KindU32
	KindU64
	KindI32
	KindI64
	KindF32
	KindF64
	KindPtr
	KindStr
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindPtr:
		return "ptr"
	case KindStr:
		return "str"
	case KindFunc:
		return "func"
	default:
		return "none"
	}
}

type (
	U32 uint32
	U64 uint64
	I32 int32
	I64 int64
	F32 float32
	F64 float64
	Str string
)

// Ptr carries a caller reference bound to a %p placeholder.
type Ptr struct {
	V any
}

// Func carries a resolved function handle.
type Func struct {
	Fn Handle
}

func (U32) Kind() Kind  { return KindU32 }
func (U64) Kind() Kind  { return KindU64 }
func (I32) Kind() Kind  { return KindI32 }
func (I64) Kind() Kind  { return KindI64 }
func (F32) Kind() Kind  { return KindF32 }
func (F64) Kind() Kind  { return KindF64 }
func (Ptr) Kind() Kind  { return KindPtr }
func (Str) Kind() Kind  { return KindStr }
func (Func) Kind() Kind { return KindFunc }

func (U32) value()  {}
func (U64) value()  {}
func (I32) value()  {}
func (I64) value()  {}
func (F32) value()  {}
func (F64) value()  {}
func (Ptr) value()  {}
func (Str) value()  {}
func (Func) value() {}

// KindOf reports the kind of v, KindNone for an unset slot.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNone
	}
	return v.Kind()
}

func intOf(v Value) (int64, bool) {
	switch x := v.(type) {
	case I32:
		return int64(x), true
	case I64:
		return int64(x), true
	case U32:
		return int64(x), true
	case U64:
		return int64(x), true
	}
	return 0, false
}

func uintOf(v Value) (uint64, bool) {
	if x, ok := v.(U64); ok {
		return uint64(x), true
	}
	n, ok := intOf(v)
	return uint64(n), ok
}

func floatOf(v Value) (float64, bool) {
	switch x := v.(type) {
	case F32:
		return float64(x), true
	case F64:
		return float64(x), true
	}
	return 0, false
}
