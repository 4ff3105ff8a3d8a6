package window

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/lixenwraith/ray-caster/engine"
	"github.com/lixenwraith/ray-caster/frame"
	"github.com/lixenwraith/ray-caster/render"
)

// FontSize is the glyph size in pixels
const FontSize = 14

// Game runs the frame loop on ebiten's update tick and draws the last frame
type Game struct {
	loop  *engine.Loop
	face  *text.GoTextFace
	cellW float64
	cellH float64
	last  *frame.Frame
}

// NewGame wraps a loop; the loop's Display and Source are replaced by the window
func NewGame(loop *engine.Loop, bindings Bindings, keys KeyState) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: FontSize}
	m := face.Metrics()

	g := &Game{
		loop:  loop,
		face:  face,
		cellW: text.Advance("M", face),
		cellH: m.HAscent + m.HDescent + m.HLineGap,
	}
	loop.Display = g
	loop.Source = NewKeyboard(bindings, keys)
	return g, nil
}

// WindowSize returns the pixel size that fits the frame exactly
func (g *Game) WindowSize() (int, int) {
	cfg := g.loop.State.Config
	return int(g.cellW * float64(cfg.ScreenWidth)), int(g.cellH * float64(cfg.ScreenHeight))
}

// Present keeps the frame for the next Draw
func (g *Game) Present(f *frame.Frame) error {
	g.last = f
	return nil
}

func (g *Game) Update() error {
	quit, err := g.loop.Step(time.Now())
	if err != nil {
		log.Printf("window: step failed: %v", err)
		return err
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.last == nil {
		return
	}

	for y := 0; y < g.last.Height(); y++ {
		for _, run := range colorRuns(g.last.Row(y)) {
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(run.start)*g.cellW, float64(y)*g.cellH)
			op.ColorScale.ScaleWithColor(run.color)
			text.Draw(screen, run.text, g.face, op)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// Run opens the window and blocks until it closes
func Run(g *Game, title string) error {
	w, h := g.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type glyphRun struct {
	start int
	text  string
	color color.RGBA
}

// colorRuns splits a row into same-colored runs, skipping blanks
func colorRuns(row []rune) []glyphRun {
	var runs []glyphRun
	start := -1
	var cur color.RGBA

	flush := func(end int) {
		if start >= 0 {
			runs = append(runs, glyphRun{start: start, text: string(row[start:end]), color: cur})
			start = -1
		}
	}

	for x, r := range row {
		if r == frame.Blank {
			flush(x)
			continue
		}
		c := GlyphColor(r)
		if start >= 0 && c != cur {
			flush(x)
		}
		if start < 0 {
			start, cur = x, c
		}
	}
	flush(len(row))
	return runs
}

// GlyphColor is the terminal palette color for a glyph
func GlyphColor(r rune) color.RGBA {
	fg, _, _ := render.StyleFor(r).Decompose()
	cr, cg, cb := fg.RGB()
	return color.RGBA{R: uint8(cr), G: uint8(cg), B: uint8(cb), A: 0xff}
}
