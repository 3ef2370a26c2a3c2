package tcellui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/world"
)

func startSim(t *testing.T) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	b := newWithScreen(screen)
	if err := b.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	screen.SetSize(80, 20)
	t.Cleanup(func() { b.Close() })
	return b, screen
}

// pollAction polls until a mapped action arrives or a second passes.
func pollAction(t *testing.T, b *Backend) core.Action {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		a, ok, err := b.Poll(context.Background(), 10*time.Millisecond)
		if err != nil {
			t.Fatalf("Poll failed: %v", err)
		}
		if ok {
			return a
		}
	}
	t.Fatal("no action within a second")
	return core.ActionNone
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Action
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionTurnLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionTurnRight},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionAccelerate},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.ActionDecelerate},
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), core.ActionToggleNoClip},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), core.ActionToggleSpeedLimit},
		{"u", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone), core.ActionToggleInvincibility},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.ActionNone},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapKey(tt.ev); got != tt.want {
				t.Errorf("mapKey = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestPollDeliversKeys(t *testing.T) {
	b, screen := startSim(t)

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	if got := pollAction(t, b); got != core.ActionAccelerate {
		t.Errorf("Poll = %v, expected Accelerate", got)
	}
}

func TestPollTimeout(t *testing.T) {
	b := newWithScreen(tcell.NewSimulationScreen("UTF-8"))

	start := time.Now()
	_, ok, err := b.Poll(context.Background(), 5*time.Millisecond)
	if ok || err != nil {
		t.Errorf("idle Poll = (%v, %v), expected timeout", ok, err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Error("Poll returned before the timeout")
	}
}

func TestPollAfterFini(t *testing.T) {
	b := newWithScreen(tcell.NewSimulationScreen("UTF-8"))
	close(b.events)

	a, ok, _ := b.Poll(context.Background(), time.Second)
	if !ok || a != core.ActionQuit {
		t.Fatalf("Poll on closed screen = (%v, %v), expected Quit", a, ok)
	}
	if _, ok, _ := b.Poll(context.Background(), time.Millisecond); ok {
		t.Error("closed screen should be reported once")
	}
}

func TestRender(t *testing.T) {
	b, screen := startSim(t)

	snap := world.Snapshot{
		Width:       8,
		Height:      5,
		Health:      10,
		Face:        '😐',
		Player:      core.NewPoint(2.0, 2.0),
		Enemies:     []core.Point2D[float64]{core.NewPoint(5.4, 1.2)},
		Walls:       []core.Point2D[uint16]{core.NewPoint(uint16(0), uint16(0))},
		Collectible: core.NewPoint(uint16(6), uint16(3)),
	}
	if err := b.Render(snap); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	checks := []struct {
		x, y  int
		want  rune
		color core.Color
	}{
		{0, 0, world.GlyphWall, core.ColorMagenta},
		{2, 2, world.GlyphPlayer, core.ColorBrightYellow},
		{4, 2, '😐', core.ColorBrightYellow},
		{5, 1, world.GlyphEnemy, core.ColorGreen},
		{6, 3, world.GlyphCollectible, core.ColorRed},
		{0, 7, '/', core.ColorWhite},
	}
	for _, c := range checks {
		mainc, _, style, _ := screen.GetContent(c.x, c.y)
		if mainc != c.want {
			t.Errorf("(%d, %d) = %q, expected %q", c.x, c.y, mainc, c.want)
		}
		fg, _, _ := style.Decompose()
		if fg != tcell.PaletteColor(c.color.ANSI()) {
			t.Errorf("(%d, %d) color = %v, expected palette %d", c.x, c.y, fg, c.color.ANSI())
		}
	}

	// The HUD is wider than the 8-column arena and must not be cut off.
	hud := snap.HUD()
	var row strings.Builder
	for x := range len(hud) {
		mainc, _, _, _ := screen.GetContent(x, 7)
		row.WriteRune(mainc)
	}
	if row.String() != hud {
		t.Errorf("HUD row = %q, expected %q", row.String(), hud)
	}
}

func TestStyleForDefault(t *testing.T) {
	if styleFor(core.ColorDefault) != tcell.StyleDefault {
		t.Error("default color should use the default style")
	}
}

func TestCloseWithoutStart(t *testing.T) {
	b := newWithScreen(tcell.NewSimulationScreen("UTF-8"))
	if err := b.Close(); err != nil {
		t.Errorf("Close without Start = %v", err)
	}
}
