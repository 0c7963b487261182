package plugins

import (
	"errors"
	"testing"

	"github.com/danmuck/ufr/internal/args"
	"github.com/danmuck/ufr/internal/testutil/testlog"
)

var _ args.Resolver = (*Registry)(nil)

func TestRegistryResolveDefaultsClass(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	r.Register("encoder", "msgpack", "", "msgpack-default")
	r.Register("encoder", "msgpack", "fast", "msgpack-fast")

	h, err := r.Resolve("encoder", "msgpack", "")
	if err != nil || h != "msgpack-default" {
		t.Fatalf("default class: %v %v", h, err)
	}
	h, err = r.Resolve("encoder", "msgpack", "fast")
	if err != nil || h != "msgpack-fast" {
		t.Fatalf("fast class: %v %v", h, err)
	}
}

func TestRegistryResolveMissing(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	if _, err := r.Resolve("socket", "zmq", "pub"); !errors.Is(err, ErrComponentNotFound) {
		t.Fatalf("expected ErrComponentNotFound, got %v", err)
	}
	r.Register("socket", "zmq", "pub", 1)
	r.Unregister("socket", "zmq", "pub")
	if _, ok := r.Get("socket", "zmq", "pub"); ok {
		t.Fatalf("expected component removed")
	}
}

func TestRegistryAsBinderResolver(t *testing.T) {
	testlog.Start(t)
	type encoder func(string) string
	r := NewRegistry()
	r.Register("encoder", "upper", "", encoder(func(s string) string { return "U:" + s }))

	a := args.Args{Text: "@enc upper @other nope:x"}
	h := a.GetFunc(r, "encoder", "@enc", nil)
	enc, ok := h.(encoder)
	if !ok {
		t.Fatalf("expected encoder handle, got %T", h)
	}
	if enc("x") != "U:x" {
		t.Fatalf("unexpected encoder output")
	}
	if h := a.GetFunc(r, "encoder", "@other", "def"); h != "def" {
		t.Fatalf("unregistered component must yield default, got %v", h)
	}
}

func TestRegistryKeysSorted(t *testing.T) {
	testlog.Start(t)
	var r Registry
	r.Register("b", "x", "", 1)
	r.Register("a", "y", "c", 2)
	keys := r.Keys()
	if len(keys) != 2 || keys[0].String() != "a/y:c" || keys[1].String() != "b/x:default" {
		t.Fatalf("unexpected keys %v", keys)
	}
}
