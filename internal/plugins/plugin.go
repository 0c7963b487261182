package plugins

import "errors"

// DefaultClass is used when a component is requested without a class.
const DefaultClass = "default"

var ErrComponentNotFound = errors.New("plugins: component not found")

// Key names one component: its kind ("encoder", "socket", ...), its library
// name and the class within that library.
type Key struct {
	Kind  string
	Name  string
	Class string
}

func (k Key) String() string {
	return k.Kind + "/" + k.Name + ":" + k.Class
}

func normalize(kind, name, class string) Key {
	if class == "" {
		class = DefaultClass
	}
	return Key{Kind: kind, Name: name, Class: class}
}
