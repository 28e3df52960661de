package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/plexus/internal/field"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want ui.Model", next)
	}
	return nm, cmd
}

func sizedModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.FieldOptions == nil {
		opts.FieldOptions = []field.Option{field.WithSeed(1)}
	}
	m, _ := update(t, New(opts), tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestFirstWindowSizeMountsField(t *testing.T) {
	m := sizedModel(t, Options{})
	if m.anim == nil {
		t.Fatal("field not mounted after the first window size")
	}
	want := field.Bounds{Width: 100 * CellWidth, Height: 28 * CellHeight}
	if got := m.anim.Bounds(); got != want {
		t.Fatalf("Bounds() = %+v, want %+v", got, want)
	}
	if m.anim.Len() != field.DefaultCount {
		t.Fatalf("Len() = %d, want %d", m.anim.Len(), field.DefaultCount)
	}
}

func TestMissingSurfaceLeavesFieldUnmounted(t *testing.T) {
	m := sizedModel(t, Options{SurfaceID: "missing"})
	if m.anim != nil {
		t.Fatal("field mounted on a missing surface")
	}
	m, cmd := update(t, m, frameMsg(time.Now()))
	if cmd == nil {
		t.Fatal("frame loop stopped without a field")
	}
	if !strings.Contains(m.View(), "no particle surface") {
		t.Fatal("View() does not mention the missing surface")
	}
}

func TestMouseMotionSetsPointerAtCellCentre(t *testing.T) {
	m := sizedModel(t, Options{})
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})

	p, ok := m.anim.Pointer()
	if !ok {
		t.Fatal("pointer not set")
	}
	want := field.Point{X: 10.5 * CellWidth, Y: 4.5 * CellHeight}
	if p != want {
		t.Fatalf("Pointer() = %+v, want %+v", p, want)
	}
}

func TestPointerLeavesCanvas(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"header row", tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionMotion}},
		{"footer row", tea.MouseMsg{X: 3, Y: 29, Action: tea.MouseActionMotion}},
		{"blur", tea.BlurMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sizedModel(t, Options{})
			m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionMotion})
			m, _ = update(t, m, tt.msg)
			if _, ok := m.anim.Pointer(); ok {
				t.Fatal("pointer still set")
			}
		})
	}
}

func TestResizeIsDebounced(t *testing.T) {
	m := sizedModel(t, Options{})
	before := m.anim.Bounds()

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if cmd == nil {
		t.Fatal("resize did not schedule a settle command")
	}
	if m.anim.Bounds() != before {
		t.Fatal("bounds changed before the debounce settled")
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 12})

	m, _ = update(t, m, resizeSettledMsg{gen: 1, width: 60, height: 20})
	if m.anim.Bounds() != before {
		t.Fatal("stale resize was applied")
	}

	m, _ = update(t, m, resizeSettledMsg{gen: 2, width: 50, height: 12})
	want := field.Bounds{Width: 50 * CellWidth, Height: 10 * CellHeight}
	if got := m.anim.Bounds(); got != want {
		t.Fatalf("Bounds() = %+v, want %+v", got, want)
	}
	if cols, rows := m.canvas.Size(); cols != 50 || rows != 10 {
		t.Fatalf("canvas size = %dx%d, want 50x10", cols, rows)
	}
}

func TestFramesKeepParticleCount(t *testing.T) {
	m := sizedModel(t, Options{})
	start := time.Unix(0, 0)
	for i := range 120 {
		var cmd tea.Cmd
		m, cmd = update(t, m, frameMsg(start.Add(time.Duration(i)*time.Second/frameRate)))
		if cmd == nil {
			t.Fatalf("frame %d did not schedule the next frame", i)
		}
	}
	if m.frames != 120 {
		t.Fatalf("frames = %d, want 120", m.frames)
	}
	if m.anim.Len() != field.DefaultCount {
		t.Fatalf("Len() = %d, want %d", m.anim.Len(), field.DefaultCount)
	}
	if m.opacity != 1 {
		t.Fatalf("opacity = %v after two seconds, want 1", m.opacity)
	}
}

func TestViewFillsWindowHeight(t *testing.T) {
	m := sizedModel(t, Options{})
	m, _ = update(t, m, frameMsg(time.Now()))
	if got := strings.Count(m.View(), "\n") + 1; got != 30 {
		t.Fatalf("View() has %d lines, want 30", got)
	}
}

func TestReducedMotionSkipsIntroAndTyping(t *testing.T) {
	m := sizedModel(t, Options{ReducedMotion: true, Words: []string{"Gopher"}})
	m, _ = update(t, m, frameMsg(time.Now()))
	if m.opacity != 1 {
		t.Fatalf("opacity = %v, want 1", m.opacity)
	}
	if !strings.Contains(m.View(), "Gopher") {
		t.Fatal("View() does not show the full word")
	}
}

func TestTypeMsgAdvancesTagline(t *testing.T) {
	m := sizedModel(t, Options{Words: []string{"Go"}})
	m, cmd := update(t, m, typeMsg{})
	if cmd == nil {
		t.Fatal("typing stopped")
	}
	if got := m.tagline(); got != "G" {
		t.Fatalf("tagline() = %q, want %q", got, "G")
	}
}

func TestCursorToggleAndPress(t *testing.T) {
	m := sizedModel(t, Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if m.cursor == nil {
		t.Fatal("cursor not enabled by c")
	}
	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.cursor.Visible() {
		t.Fatal("cursor hidden after a press on the canvas")
	}
	m, _ = update(t, m, frameMsg(time.Now()))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if m.cursor != nil {
		t.Fatal("cursor not disabled by a second c")
	}
}

func TestQuitKey(t *testing.T) {
	m := sizedModel(t, Options{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit command is not tea.Quit")
	}
	if m.View() != "" {
		t.Fatal("View() not empty after quitting")
	}
}
