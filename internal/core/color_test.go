package core

import "testing"

func TestColorOver(t *testing.T) {
	tests := []struct {
		name     string
		src, dst Color
		expected Color
	}{
		{"opaque replaces", ColorRed, ColorBlue, ColorRed},
		{"transparent keeps", ColorRed.WithAlpha(0), ColorBlue, ColorBlue},
		{"half blend", RGB(200, 0, 0).WithAlpha(255 / 2), RGB(0, 0, 200), RGB(99, 0, 100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.src.Over(tc.dst); got != tc.expected {
				t.Errorf("Over() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestColorHexAndScale(t *testing.T) {
	if got := RGB(255, 128, 0).Hex(); got != "#ff8000" {
		t.Errorf("Hex() = %q, expected #ff8000", got)
	}
	if got := RGB(200, 100, 50).Scale(0.5); got != RGB(100, 50, 25) {
		t.Errorf("Scale(0.5) = %+v, expected (100, 50, 25)", got)
	}
	if got := ColorWhite.Scale(2); got != ColorWhite {
		t.Errorf("Scale(2) = %+v, expected clamp to white", got)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var c Canvas = &r

	c.Clear(ColorBlack)
	c.Text(Pt(10, 10), "Battle started!", ColorText, AlignLeft)
	c.Sprite(SpriteDragon, NewRect(0, 0, 10, 10), ColorWhite)
	c.FillCircle(Pt(1, 1), 3, ColorRed)

	if r.Count("text") != 1 || r.Count("circle") != 1 {
		t.Errorf("Count() mismatch: %+v", r.Commands)
	}
	if !r.HasText("started") {
		t.Error("HasText() should match substrings")
	}
	if !r.HasSprite(SpriteDragon) || r.HasSprite(SpriteMage) {
		t.Error("HasSprite() mismatch")
	}

	r.Reset()
	if len(r.Commands) != 0 {
		t.Errorf("Reset() left %d commands", len(r.Commands))
	}
}
