package args

// Resolver loads a named component of a kind, for example a driver class
// selected by "@encoder msgpack:default".
type Resolver interface {
	Resolve(kind, name, class string) (Handle, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(kind, name, class string) (Handle, error)

func (f ResolverFunc) Resolve(kind, name, class string) (Handle, error) {
	return f(kind, name, class)
}
