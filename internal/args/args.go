package args

import "fmt"

// MaxArgs is the size of the positional value array.
const MaxArgs = 7

// Args pairs a command text with the values bound to its placeholders. The
// n-th placeholder token (%d, %s, %f, %p, ...) of Text reads Arg[n], counting
// every placeholder left to right regardless of the name it follows.
type Args struct {
	Text string
	Arg  [MaxArgs]Value
}

// New binds values positionally to the placeholders of text.
func New(text string, values ...Value) (Args, error) {
	if len(values) > MaxArgs {
		return Args{}, fmt.Errorf("%w: %d values, max %d", ErrTooManyArgs, len(values), MaxArgs)
	}
	a := Args{Text: text}
	copy(a.Arg[:], values)
	return a, nil
}

// Load binds the variadic values to the %p placeholders of text, in order.
// Each value lands in the slot of its placeholder's position among all
// placeholders; %d, %s and %f slots are left unset. Extra values are ignored
// and missing values leave their slots unset.
func Load(text string, ptrs ...any) (Args, error) {
	a := Args{Text: text}
	s := NewScanner(text)
	count, next := 0, 0
	for s.Scan() {
		tok := s.Token()
		if tok[0] != '%' {
			continue
		}
		if count >= MaxArgs {
			return Args{}, fmt.Errorf("%w: more than %d placeholders in %q", ErrTooManyArgs, MaxArgs, text)
		}
		if len(tok) > 1 && tok[1] == 'p' && next < len(ptrs) {
			a.Arg[count] = Ptr{V: ptrs[next]}
			next++
		}
		count++
	}
	return a, nil
}

// binding is the token that follows a matched name.
type binding struct {
	token string
	slot  Value
}

func (b binding) placeholder() bool {
	return len(b.token) > 0 && b.token[0] == '%'
}

func (b binding) verb() byte {
	if len(b.token) < 2 {
		return 0
	}
	return b.token[1]
}

// lookup re-scans Text from the start. For every occurrence of name it hands
// the following token to accept, which returns true once it has produced a
// result. A name with no following token yields an empty literal. It reports
// whether any accept call did.
func (a *Args) lookup(name string, accept func(binding) bool) bool {
	if a == nil {
		return false
	}
	s := NewScanner(a.Text)
	count := 0
	for s.Scan() {
		tok := s.Token()
		if tok[0] != '@' {
			if tok[0] == '%' {
				count++
			}
			continue
		}
		if tok != name {
			continue
		}
		// a name ending the text reads an empty literal
		if !s.Scan() {
			return accept(binding{})
		}
		b := binding{token: s.Token()}
		if b.placeholder() {
			b.slot = a.slot(count)
		}
		if accept(b) {
			return true
		}
		if b.placeholder() {
			count++
		}
	}
	return false
}

func (a *Args) slot(i int) Value {
	if i < 0 || i >= MaxArgs {
		return nil
	}
	return a.Arg[i]
}

// GetUint returns the unsigned value bound to name, or def.
func (a *Args) GetUint(name string, def uint64) uint64 {
	out := def
	a.lookup(name, func(b binding) bool {
		if !b.placeholder() {
			out = uint64(atoi(b.token))
			return true
		}
		switch b.verb() {
		case 'd':
			if v, ok := uintOf(b.slot); ok {
				out = v
			}
		case 's':
			if v, ok := b.slot.(Str); ok {
				out = uint64(atoi(string(v)))
			}
		case 'f':
			if v, ok := floatOf(b.slot); ok {
				out = uint64(int64(v))
			}
		default:
			return false
		}
		return true
	})
	return out
}

// GetInt returns the signed value bound to name, or def.
func (a *Args) GetInt(name string, def int) int {
	out := def
	a.lookup(name, func(b binding) bool {
		if !b.placeholder() {
			out = int(atoi(b.token))
			return true
		}
		switch b.verb() {
		case 'd':
			if v, ok := intOf(b.slot); ok {
				out = int(v)
			}
		case 's':
			if v, ok := b.slot.(Str); ok {
				out = int(atoi(string(v)))
			}
		case 'f':
			if v, ok := floatOf(b.slot); ok {
				out = int(v)
			}
		default:
			return false
		}
		return true
	})
	return out
}

// GetFloat returns the float value bound to name, or def.
func (a *Args) GetFloat(name string, def float32) float32 {
	out := def
	a.lookup(name, func(b binding) bool {
		if !b.placeholder() {
			out = float32(atof(b.token))
			return true
		}
		switch b.verb() {
		case 'd':
			if v, ok := intOf(b.slot); ok {
				out = float32(v)
			}
		case 's':
			if v, ok := b.slot.(Str); ok {
				out = float32(atof(string(v)))
			}
		case 'f':
			if v, ok := floatOf(b.slot); ok {
				out = float32(v)
			}
		default:
			return false
		}
		return true
	})
	return out
}

// GetPointer returns the reference bound to name through a %p placeholder,
// or def. Literal values cannot carry references and are skipped.
func (a *Args) GetPointer(name string, def any) any {
	out := def
	a.lookup(name, func(b binding) bool {
		if !b.placeholder() {
			return false
		}
		if b.verb() == 'p' {
			if v, ok := b.slot.(Ptr); ok {
				out = v.V
			}
		}
		return true
	})
	return out
}

// GetString returns the string bound to name, or def. A literal is returned
// as scanned, without its quotes.
func (a *Args) GetString(name string, def string) string {
	out := def
	a.lookup(name, func(b binding) bool {
		if !b.placeholder() {
			out = b.token
			return true
		}
		if b.verb() == 's' {
			if v, ok := b.slot.(Str); ok {
				out = string(v)
			}
		}
		return true
	})
	return out
}

// AppendString appends the string bound to name, or def, to dst.
func (a *Args) AppendString(dst []byte, name string, def string) []byte {
	return append(dst, a.GetString(name, def)...)
}

// GetFunc returns the handle bound to name. A %p placeholder yields the
// bound handle; a literal "name:class" is resolved through r as a component
// of the given kind. A nil resolver or a failed resolution yields def.
func (a *Args) GetFunc(r Resolver, kind, name string, def Handle) Handle {
	out := def
	a.lookup(name, func(b binding) bool {
		if b.placeholder() {
			if b.verb() == 'p' {
				switch v := b.slot.(type) {
				case Func:
					out = v.Fn
				case Ptr:
					out = v.V
				}
			}
			return true
		}
		if b.token == "" {
			return false
		}
		if r == nil {
			return true
		}
		cursor := 0
		lib, _ := FlexDiv(b.token, &cursor, TokenMax, ':')
		class, _ := FlexDiv(b.token, &cursor, TokenMax, ':')
		h, err := r.Resolve(kind, lib, class)
		if err == nil && h != nil {
			out = h
		}
		return true
	})
	return out
}
