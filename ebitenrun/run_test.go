package ebitenrun

import (
	"image/color"
	"math"
	"testing"

	"github.com/phanxgames/fader"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestScreenRect_FullScreen(t *testing.T) {
	n := fader.NewAnchoredNode("bg", fader.RectFull)
	x, y, w, h, ok := ScreenRect(n, 640, 480)
	if !ok {
		t.Fatal("expected full-screen node to be drawable")
	}
	if !approx(x, 0) || !approx(y, 0) || !approx(w, 640) || !approx(h, 480) {
		t.Errorf("rect = (%v,%v,%v,%v), want (0,0,640,480)", x, y, w, h)
	}
}

func TestScreenRect_TopRightQuadrant(t *testing.T) {
	n := fader.NewAnchoredNode("panel", fader.Rect{Left: 0, Right: 1, Bottom: 0, Top: 1})
	x, y, w, h, ok := ScreenRect(n, 640, 480)
	if !ok {
		t.Fatal("expected drawable")
	}
	if !approx(x, 320) || !approx(y, 0) || !approx(w, 320) || !approx(h, 240) {
		t.Errorf("rect = (%v,%v,%v,%v), want (320,0,320,240)", x, y, w, h)
	}
}

func TestScreenRect_ScaledAboutCentre(t *testing.T) {
	n := fader.NewAnchoredNode("box", fader.RectFull)
	n.SetScale(fader.Vec3{X: 0.5, Y: 0.5, Z: 1})
	x, y, w, h, ok := ScreenRect(n, 200, 100)
	if !ok {
		t.Fatal("expected drawable")
	}
	if !approx(x, 50) || !approx(y, 25) || !approx(w, 100) || !approx(h, 50) {
		t.Errorf("rect = (%v,%v,%v,%v), want (50,25,100,50)", x, y, w, h)
	}
}

func TestScreenRect_NestedAnchors(t *testing.T) {
	parent := fader.NewAnchoredNode("left", fader.Rect{Left: -1, Right: 0, Bottom: -1, Top: 1})
	child := fader.NewAnchoredNode("inner", fader.Rect{Left: 0, Right: 1, Bottom: -1, Top: 1})
	parent.AddChild(child)
	x, _, w, _, ok := ScreenRect(child, 400, 100)
	if !ok {
		t.Fatal("expected drawable")
	}
	if !approx(x, 100) || !approx(w, 100) {
		t.Errorf("x=%v w=%v, want x=100 w=100", x, w)
	}
}

func TestScreenRect_SkipsUnanchoredAndEmpty(t *testing.T) {
	if _, _, _, _, ok := ScreenRect(fader.NewNode("plain"), 640, 480); ok {
		t.Error("unanchored node should not be drawable")
	}
	n := fader.NewAnchoredNode("box", fader.RectFull)
	n.SetScale(fader.Vec3{})
	if _, _, _, _, ok := ScreenRect(n, 640, 480); ok {
		t.Error("zero-scale node should not be drawable")
	}
}

func TestFadeColor(t *testing.T) {
	c := FadeColor(color.RGBA{R: 255, G: 0, B: 0, A: 255}, 0.5)
	if c.A < 32700 || c.A > 32800 {
		t.Errorf("A = %d, want ~32767", c.A)
	}
	if c.R != c.A {
		t.Errorf("R = %d, want premultiplied %d", c.R, c.A)
	}
	if got := FadeColor(color.White, 2); got.A != 0xffff {
		t.Errorf("alpha above 1 should clamp, got A=%d", got.A)
	}
	if got := FadeColor(color.White, -1); got.A != 0 {
		t.Errorf("alpha below 0 should clamp, got A=%d", got.A)
	}
}

func TestNodeColor_UserData(t *testing.T) {
	n := fader.NewNode("tinted")
	want := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	n.UserData = want
	if got := nodeColor(n); got != want {
		t.Errorf("nodeColor = %v, want %v", got, want)
	}
}

func TestNewGame_Defaults(t *testing.T) {
	g := NewGame(fader.NewStage(fader.WithDiagnostics(fader.Discard())), RunConfig{})
	if w, h := g.Layout(0, 0); w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
	if g.fps != nil {
		t.Error("fps overlay should be off by default")
	}
}
