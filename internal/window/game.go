// Package window runs the particle field in a desktop window using ebiten.
package window

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/olivier-w/plexus/internal/cursor"
	"github.com/olivier-w/plexus/internal/field"
	"github.com/olivier-w/plexus/internal/motion"
	"github.com/olivier-w/plexus/internal/typing"
)

const resizeDebounce = 250 * time.Millisecond

// Options configures the window backend.
type Options struct {
	FieldOptions  []field.Option
	Words         []string
	ReducedMotion bool
	Cursor        bool
	Width, Height int
}

// Game implements ebiten.Game.
type Game struct {
	opts   Options
	host   *screenHost
	anim   *field.Animation
	typer  *typing.Typewriter
	cursor *cursor.Cursor
	intro  motion.Intro

	started  time.Time
	nextType time.Time
	pending  field.Bounds
	settleAt time.Time
	tried    bool
}

// New creates a game. The field is mounted on the first update after the
// window size is known.
func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	g := &Game{
		opts:  opts,
		host:  &screenHost{surface: &screenSurface{}},
		typer: typing.New(opts.Words),
		intro: motion.NewIntro(opts.ReducedMotion),
	}
	if opts.Cursor {
		g.cursor = cursor.New(ebiten.TPS())
	}
	return g
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle("plexus")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if g.cursor != nil {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	now := time.Now()
	if g.started.IsZero() {
		g.started = now
		g.nextType = now
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.toggleCursor()
	}

	g.mount()
	g.settleResize(now)
	g.trackPointer()

	if !g.opts.ReducedMotion && !now.Before(g.nextType) {
		g.nextType = now.Add(g.typer.Advance())
	}
	return nil
}

func (g *Game) mount() {
	if g.tried || g.host.viewport == (field.Bounds{}) {
		return
	}
	g.tried = true
	g.anim = field.Mount(g.host, field.SurfaceID, g.opts.FieldOptions...)
	if g.anim == nil {
		log.Printf("window: no surface %q, particle field disabled", field.SurfaceID)
		return
	}
	log.Printf("window: mounted %d particles on %.0fx%.0f", g.anim.Len(), g.host.viewport.Width, g.host.viewport.Height)
}

func (g *Game) settleResize(now time.Time) {
	if g.pending == g.host.viewport || now.Before(g.settleAt) {
		return
	}
	g.host.viewport = g.pending
	if g.anim != nil {
		g.anim.Resize(g.pending.Width, g.pending.Height)
		log.Printf("window: resized field to %.0fx%.0f", g.pending.Width, g.pending.Height)
	}
}

func (g *Game) trackPointer() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	vp := g.host.viewport
	inside := ebiten.IsFocused() && fx >= 0 && fy >= 0 && fx < vp.Width && fy < vp.Height

	if g.anim != nil {
		if inside {
			g.anim.MovePointer(fx, fy)
		} else {
			g.anim.ClearPointer()
		}
	}
	if g.cursor != nil {
		if inside {
			g.cursor.Move(fx, fy)
		} else {
			g.cursor.Hide()
		}
		g.cursor.SetPressed(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
		g.cursor.Update()
	}
}

func (g *Game) toggleCursor() {
	if g.cursor == nil {
		g.cursor = cursor.New(ebiten.TPS())
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
		return
	}
	g.cursor = nil
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.host.surface.img = screen
	opacity := g.intro.Opacity(time.Since(g.started))

	if g.anim != nil {
		g.anim.SetOpacity(opacity)
		g.anim.Frame()
	} else {
		g.host.surface.Clear()
	}
	if g.cursor != nil && cursor.Enabled(g.host.viewport) {
		g.cursor.Draw(field.Fade(g.host.surface, opacity))
	}

	tagline := g.typer.Text()
	if g.opts.ReducedMotion {
		tagline = g.typer.Word()
	}
	ebitenutil.DebugPrintAt(screen, "plexus  "+tagline+"_", 16, 16)
}

// Layout reports the outside size as the viewport. Size changes reach the
// field after they have been stable for a debounce interval; the first size
// is taken as is.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := field.Bounds{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if g.host.viewport == (field.Bounds{}) {
		g.host.viewport = b
		g.pending = b
	} else if b != g.pending {
		g.pending = b
		g.settleAt = time.Now().Add(resizeDebounce)
	}
	return outsideWidth, outsideHeight
}
