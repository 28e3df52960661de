package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/plexus/internal/canvas"
	"github.com/olivier-w/plexus/internal/cursor"
	"github.com/olivier-w/plexus/internal/field"
	"github.com/olivier-w/plexus/internal/motion"
	"github.com/olivier-w/plexus/internal/typing"
)

// Field units per terminal cell. They match the canvas dot scale (2x4 dots per cell).
const (
	CellWidth  = 2 * canvas.PixelsPerDotX
	CellHeight = 4 * canvas.PixelsPerDotY
)

const (
	headerRows     = 1
	footerRows     = 1
	resizeDebounce = 250 * time.Millisecond
)

// Options configures the terminal backend.
type Options struct {
	FieldOptions  []field.Option
	Words         []string
	ReducedMotion bool
	Cursor        bool
	// SurfaceID is the surface the field mounts on. Empty means field.SurfaceID.
	SurfaceID string
}

// Model is the Bubbletea model for the plexus TUI.
type Model struct {
	opts     Options
	canvas   *canvas.Braille
	anim     *field.Animation
	typer    *typing.Typewriter
	cursor   *cursor.Cursor
	intro    motion.Intro
	keys     keyMap
	help     help.Model
	started  time.Time
	opacity  float64
	width    int
	height   int
	sized    bool
	gen      int
	frames   int
	quitting bool
}

// terminalHost exposes the Braille canvas as the only surface.
type terminalHost struct {
	canvas *canvas.Braille
}

func (h terminalHost) Surface(id string) (field.Surface, bool) {
	if id != field.SurfaceID {
		return nil, false
	}
	return h.canvas, true
}

func (h terminalHost) Viewport() field.Bounds { return h.canvas.Bounds() }

// New creates a Model. The field is mounted once the terminal size is known.
func New(opts Options) Model {
	if opts.SurfaceID == "" {
		opts.SurfaceID = field.SurfaceID
	}
	m := Model{
		opts:   opts,
		canvas: canvas.New(0, 0),
		typer:  typing.New(opts.Words),
		intro:  motion.NewIntro(opts.ReducedMotion),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	if opts.Cursor {
		m.cursor = cursor.New(frameRate)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd(), tea.SetWindowTitle("plexus")}
	if !m.opts.ReducedMotion {
		cmds = append(cmds, typeCmd(0))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cursor):
			if m.cursor == nil {
				m.cursor = cursor.New(frameRate)
			} else {
				m.cursor = nil
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		if !m.sized {
			m.sized = true
			m.applySize(msg.Width, msg.Height)
			m.mount()
			return m, nil
		}
		m.gen++
		return m, resizeCmd(m.gen, msg.Width, msg.Height)

	case resizeSettledMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.applySize(msg.width, msg.height)
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.BlurMsg:
		m.pointerLeft()
		return m, nil

	case frameMsg:
		m.frame(time.Time(msg))
		return m, frameCmd()

	case typeMsg:
		return m, typeCmd(m.typer.Advance())
	}

	return m, nil
}

func (m *Model) mount() {
	if m.anim != nil {
		return
	}
	m.anim = field.Mount(terminalHost{canvas: m.canvas}, m.opts.SurfaceID, m.opts.FieldOptions...)
	if m.anim == nil {
		log.Printf("ui: no surface %q, particle field disabled", m.opts.SurfaceID)
		return
	}
	b := m.anim.Bounds()
	log.Printf("ui: mounted %d particles on %.0fx%.0f", m.anim.Len(), b.Width, b.Height)
}

func (m *Model) applySize(width, height int) {
	m.width, m.height = width, height
	rows := height - headerRows - footerRows
	if rows < 1 {
		rows = 1
	}
	m.canvas.Resize(width, rows)
	m.help.Width = width
	if m.anim != nil {
		b := m.canvas.Bounds()
		m.anim.Resize(b.Width, b.Height)
		log.Printf("ui: resized field to %.0fx%.0f", b.Width, b.Height)
	}
}

func (m *Model) frame(now time.Time) {
	if m.started.IsZero() {
		m.started = now
	}
	m.opacity = m.intro.Opacity(now.Sub(m.started))
	m.frames++
	if m.anim == nil {
		return
	}
	m.anim.SetOpacity(m.opacity)
	m.anim.Frame()

	if m.cursor != nil && cursor.Enabled(m.anim.Bounds()) {
		m.cursor.Update()
		m.cursor.Draw(field.Fade(m.canvas, m.opacity))
	}
}

// handleMouse maps a cell to the field point at its centre.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	cols, rows := m.canvas.Size()
	row := msg.Y - headerRows
	if msg.X < 0 || msg.X >= cols || row < 0 || row >= rows {
		m.pointerLeft()
		return
	}
	x := (float64(msg.X) + 0.5) * CellWidth
	y := (float64(row) + 0.5) * CellHeight
	if m.anim != nil {
		m.anim.MovePointer(x, y)
	}
	if m.cursor != nil {
		m.cursor.Move(x, y)
		switch msg.Action {
		case tea.MouseActionPress:
			m.cursor.SetPressed(true)
		case tea.MouseActionRelease:
			m.cursor.SetPressed(false)
		}
	}
}

func (m *Model) pointerLeft() {
	if m.anim != nil {
		m.anim.ClearPointer()
	}
	if m.cursor != nil {
		m.cursor.Hide()
	}
}

func (m Model) tagline() string {
	if m.opts.ReducedMotion {
		return m.typer.Word()
	}
	return m.typer.Text()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render("plexus") + "  " + taglineStyle.Render(m.tagline()) + caretStyle.Render("▏")
	if !m.sized {
		return header
	}

	footer := m.help.View(m.keys)
	if m.anim == nil {
		footer = statusStyle.Render("no particle surface") + "  " + footer
	}
	return header + "\n" + m.canvas.View() + "\n" + footer
}
