package fleas

import "testing"

func TestSymbol(t *testing.T) {
	cases := map[int]byte{0: '.', 1: '1', 5: '5', 9: '9', 10: '+', 37: '+'}
	for count, want := range cases {
		if got := Symbol(count); got != want {
			t.Fatalf("Symbol(%d) = %q, want %q", count, got, want)
		}
	}
}

func TestRenderGrid(t *testing.T) {
	got := RenderGrid([]int{0, 1, 0, 9, 12, 3, 2, 0, 0}, 3)
	want := ". 1 .\n9 + 3\n2 . ."
	if got != want {
		t.Fatalf("RenderGrid =\n%s\nwant\n%s", got, want)
	}
}

func TestPaletteCoversShades(t *testing.T) {
	p := Palette()
	if len(p) != MaxShade+1 {
		t.Fatalf("palette has %d entries, want %d", len(p), MaxShade+1)
	}
	if Shade(-1) != 0 || Shade(4) != 4 || Shade(25) != MaxShade {
		t.Fatal("Shade must clamp into the palette")
	}
	for i, c := range p {
		if c.A != 255 {
			t.Fatalf("palette entry %d is not opaque", i)
		}
	}
}
