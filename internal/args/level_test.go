package args

import (
	"testing"

	"github.com/danmuck/ufr/internal/testutil/testlog"
)

func TestDecreaseLevel(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		in   string
		want string
	}{
		{"@new teste @path file @@new opencv @@id 0", "@new opencv @id 0 "},
		{"@a x @@a y", "@a y "},
		{"x @@a y", "@a y "},
		{"@@a 'two words' @b z", "@a two words "},
		{"@a x @b y", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DecreaseLevel(tc.in); got != tc.want {
			t.Fatalf("DecreaseLevel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDecreaseLevelTwice(t *testing.T) {
	testlog.Start(t)
	inner := DecreaseLevel(DecreaseLevel("@drv zmq @@drv ros @@@drv raw @@@port 8"))
	if inner != "@drv raw @port 8 " {
		t.Fatalf("unexpected inner scope %q", inner)
	}
}

func TestArgsDecreaseCarriesKeptValues(t *testing.T) {
	testlog.Start(t)
	a, err := New("@a %d @@b %s @@c %d @d %f", I32(1), Str("s"), I32(3), F32(4))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	child := a.Decrease()
	if child.Text != "@b %s @c %d " {
		t.Fatalf("unexpected child text %q", child.Text)
	}
	if got := child.GetString("@b", ""); got != "s" {
		t.Fatalf("@b: got %q", got)
	}
	if got := child.GetInt("@c", 0); got != 3 {
		t.Fatalf("@c: got %d", got)
	}
	if child.Arg[2] != nil {
		t.Fatalf("dropped values must not be carried, got %v", child.Arg[2])
	}
}
