package core

import "testing"

func TestColorRGBA(t *testing.T) {
	seen := map[Color]bool{}
	for c := ColorDefault; c <= ColorBlack; c++ {
		v := c.ToRGBA()
		if v.A != 255 {
			t.Errorf("color %d is not opaque: %+v", c, v)
		}
		seen[c] = true
	}
	if len(seen) != len(rgba) {
		t.Errorf("palette has %d entries, expected %d", len(rgba), len(seen))
	}

	if got := Color(200).ToRGBA(); got != ColorDefault.ToRGBA() {
		t.Errorf("unknown color = %+v, expected the default", got)
	}
}
