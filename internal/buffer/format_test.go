package buffer

import (
	"testing"

	"github.com/danmuck/ufr/internal/testutil/testlog"
)

func TestPutU8WrapsAndSeparates(t *testing.T) {
	testlog.Start(t)
	b := mustNew(t)
	wrapped := -37
	steps := []struct {
		v    uint8
		want string
	}{
		{13, "13"},
		{255, "13 255"},
		{1, "13 255 1"},
		{uint8(wrapped), "13 255 1 219"},
	}
	for _, step := range steps {
		if err := b.PutU8(step.v); err != nil {
			t.Fatalf("put u8 %d: %v", step.v, err)
		}
		if b.String() != step.want || b.Size() != len(step.want) {
			t.Fatalf("got %q (size %d) want %q", b.String(), b.Size(), step.want)
		}
	}
}

func TestPutI8(t *testing.T) {
	testlog.Start(t)
	b := mustNew(t)
	fraction := 12.9
	for _, v := range []int8{-128, -100, int8(fraction)} {
		if err := b.PutI8(v); err != nil {
			t.Fatalf("put i8 %d: %v", v, err)
		}
	}
	if want := "-128 -100 12"; b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}
}

func TestPutU32(t *testing.T) {
	testlog.Start(t)
	b := mustNew(t)
	minusOne := -1
	for _, v := range []uint32{1250, 25, 4294967295, uint32(minusOne)} {
		if err := b.PutU32(v); err != nil {
			t.Fatalf("put u32 %d: %v", v, err)
		}
	}
	if want := "1250 25 4294967295 4294967295"; b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}
}

func TestPutI32WrapsTwosComplement(t *testing.T) {
	testlog.Start(t)
	b := mustNew(t)
	var over, wide int64 = 2147483648, 3000000000
	for _, v := range []int32{-2147483600, -2147483648, 1350, int32(over), int32(wide)} {
		if err := b.PutI32(v); err != nil {
			t.Fatalf("put i32 %d: %v", v, err)
		}
	}
	want := "-2147483600 -2147483648 1350 -2147483648 -1294967296"
	if b.String() != want || b.Size() != 52 {
		t.Fatalf("got %q (size %d) want %q", b.String(), b.Size(), want)
	}
}

func TestPutF32FixedSixDigits(t *testing.T) {
	testlog.Start(t)
	b := mustNew(t)
	for _, v := range []float32{0.000012, 0, 34, -12.0123456} {
		if err := b.PutF32(v); err != nil {
			t.Fatalf("put f32 %v: %v", v, err)
		}
	}
	want := "0.000012 0.000000 34.000000 -12.012345"
	if b.String() != want || b.Size() != 38 {
		t.Fatalf("got %q (size %d) want %q", b.String(), b.Size(), want)
	}
}

func TestPutStrNeverSeparates(t *testing.T) {
	testlog.Start(t)
	b := mustNew(t)
	steps := []struct {
		in   string
		want string
	}{
		{"teste 1", "teste 1"},
		{"teste 2", "teste 1teste 2"},
		{" teste3 ", "teste 1teste 2 teste3 "},
	}
	for _, step := range steps {
		if err := b.PutStr(step.in); err != nil {
			t.Fatalf("put str: %v", err)
		}
		if b.String() != step.want {
			t.Fatalf("got %q want %q", b.String(), step.want)
		}
	}
}

func TestMixedCommandBuild(t *testing.T) {
	testlog.Start(t)
	b := mustNew(t)
	if err := b.PutStr("@id"); err != nil {
		t.Fatalf("put str: %v", err)
	}
	if err := b.PutI32(10); err != nil {
		t.Fatalf("put i32: %v", err)
	}
	if err := b.PutStr(" @gain"); err != nil {
		t.Fatalf("put str: %v", err)
	}
	if err := b.PutF32(1.5); err != nil {
		t.Fatalf("put f32: %v", err)
	}
	if want := "@id 10 @gain 1.500000"; b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}
}

func TestFormatterReservesBeforeWriting(t *testing.T) {
	testlog.Start(t)
	b := mustNew(t, WithMaxCapacity(InitialCapacity))
	if err := b.Put(make([]byte, InitialCapacity-10)); err != nil {
		t.Fatalf("put: %v", err)
	}
	// 10 bytes fit " 1" but not the 32 byte worst case for i32.
	if err := b.PutI32(1); err == nil {
		t.Fatalf("expected reservation failure")
	}
	if b.Size() != InitialCapacity-10 {
		t.Fatalf("failed format wrote bytes: size %d", b.Size())
	}
	if err := b.PutU8(1); err != nil {
		t.Fatalf("u8 fits in reserved width: %v", err)
	}
}
