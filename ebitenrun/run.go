// Package ebitenrun drives a fader Stage from an [Ebitengine] game loop and
// draws its anchored nodes as translucent rectangles. It is meant for
// previewing fade, scale and slide transitions.
//
//	stage := fader.NewStage()
//	// ... build nodes and faders ...
//	ebitenrun.Run(stage, ebitenrun.RunConfig{Title: "Preview", ShowFPS: true})
//
// [Ebitengine]: https://ebitengine.org
package ebitenrun

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/fader"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background fills the screen every frame. Defaults to a dark grey.
	Background color.Color
}

var defaultBackground = color.RGBA{R: 26, G: 26, B: 38, A: 255}

// Game implements ebiten.Game for a Stage. Use it directly to embed a stage
// in a larger ebiten program; Run covers the common case.
type Game struct {
	stage *fader.Stage
	cfg   RunConfig
	fps   *fpsOverlay
}

// NewGame wraps stage. Zero width or height default to 640x480.
func NewGame(stage *fader.Stage, cfg RunConfig) *Game {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Background == nil {
		cfg.Background = defaultBackground
	}
	g := &Game{stage: stage, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// Run opens a window and runs stage until the window is closed.
func Run(stage *fader.Stage, cfg RunConfig) error {
	g := NewGame(stage, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	return ebiten.RunGame(g)
}

// Update advances the stage by one tick.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.stage.Update(dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

// Draw renders every anchored, enabled node in tree order.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	g.stage.Root().Walk(func(n *fader.Node) {
		if !n.EnabledInHierarchy() {
			return
		}
		x, y, rw, rh, ok := ScreenRect(n, w, h)
		if !ok {
			return
		}
		clr := FadeColor(nodeColor(n), n.WorldAlpha())
		vector.DrawFilledRect(screen, x, y, rw, rh, clr, false)
	})
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout keeps a fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// ScreenRect maps a node's world anchors onto a w x h screen, with anchor
// -1 at the left/bottom edge and 1 at the right/top edge, then scales the
// rect about its centre by the node's world scale. ok is false for
// unanchored nodes and for rects with no area.
func ScreenRect(n *fader.Node, w, h int) (x, y, width, height float32, ok bool) {
	if !n.Anchored {
		return 0, 0, 0, 0, false
	}
	r := n.WorldAnchors()
	s := n.WorldScale()
	fw, fh := float64(w), float64(h)

	x0 := (r.Left + 1) / 2 * fw
	x1 := (r.Right + 1) / 2 * fw
	y0 := (1 - r.Top) / 2 * fh
	y1 := (1 - r.Bottom) / 2 * fh

	cx, cy := (x0+x1)/2, (y0+y1)/2
	hw, hh := (x1-x0)/2*s.X, (y1-y0)/2*s.Y
	if hw <= 0 || hh <= 0 {
		return 0, 0, 0, 0, false
	}
	return float32(cx - hw), float32(cy - hh), float32(2 * hw), float32(2 * hh), true
}

// FadeColor multiplies a premultiplied colour by alpha, clamped to [0, 1].
func FadeColor(c color.Color, alpha float64) color.RGBA64 {
	alpha = min(max(alpha, 0), 1)
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}

var palette = []color.RGBA{
	{R: 102, G: 204, B: 255, A: 255},
	{R: 255, G: 153, B: 51, A: 255},
	{R: 153, G: 255, B: 102, A: 255},
	{R: 230, G: 230, B: 77, A: 255},
	{R: 255, G: 102, B: 178, A: 255},
}

// nodeColor uses UserData when it is a color.Color, otherwise a palette
// entry picked by node ID.
func nodeColor(n *fader.Node) color.Color {
	if c, ok := n.UserData.(color.Color); ok {
		return c
	}
	return palette[int(n.ID)%len(palette)]
}
