package world

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Glyphs used when rendering the arena.
const (
	GlyphWall        = '▓'
	GlyphCollectible = '❤'
	GlyphEnemy       = '⁂'
	GlyphPlayer      = '🔫' // Drawn before the health face
)

// Snapshot is an immutable copy of everything a renderer needs.
type Snapshot struct {
	Tick        uint64
	Width       uint16
	Height      uint16
	Score       uint32
	Health      uint8
	Speed       float64
	NoClip      bool
	SpeedLimit  bool
	Invincible  bool
	Face        rune
	Player      core.Point2D[float64]
	Enemies     []core.Point2D[float64]
	Walls       []core.Point2D[uint16]
	Collectible core.Point2D[uint16]
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	enemies := make([]core.Point2D[float64], len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = e.Position()
	}
	walls := make([]core.Point2D[uint16], len(g.walls))
	for i, w := range g.walls {
		walls[i] = w.Position()
	}

	return Snapshot{
		Tick:        g.tick,
		Width:       g.width,
		Height:      g.height,
		Score:       g.score,
		Health:      g.player.Health(),
		Speed:       g.player.Speed(),
		NoClip:      g.player.NoClip(),
		SpeedLimit:  g.player.SpeedLimit(),
		Invincible:  g.player.Invincible(),
		Face:        g.player.Face(),
		Player:      g.player.Position(),
		Enemies:     enemies,
		Walls:       walls,
		Collectible: g.collectible.Position(),
	}
}

// ScreenSize returns the buffer size needed to render the arena plus HUD.
// The buffer is widened when the HUD line is longer than the arena.
func (s Snapshot) ScreenSize() (width, height int) {
	return max(int(s.Width), runewidth.StringWidth(s.HUD())), int(s.Height) + core.HUDRows
}

// Render draws the snapshot into dst. Walls go first, then the player, the
// enemies, the collectible and finally the HUD on the last reserved row.
func (s Snapshot) Render(dst *core.Screen) {
	dst.Clear()

	for _, w := range s.Walls {
		dst.SetCell(int(w.X), int(w.Y), GlyphWall, core.ColorMagenta)
	}

	pc := core.CellOf(s.Player)
	glyph := []rune{GlyphPlayer}
	if s.Face != 0 {
		glyph = append(glyph, s.Face)
	}
	dst.DrawText(int(pc.X), int(pc.Y), string(glyph), core.ColorBrightYellow)

	for _, e := range s.Enemies {
		ec := core.CellOf(e)
		dst.SetCell(int(ec.X), int(ec.Y), GlyphEnemy, core.ColorGreen)
	}

	dst.SetCell(int(s.Collectible.X), int(s.Collectible.Y), GlyphCollectible, core.ColorRed)

	dst.DrawText(0, int(s.Height)+core.HUDRows-1, s.HUD(), core.ColorWhite)
}

// HUD returns the status line shown under the arena.
func (s Snapshot) HUD() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "//  SCORE: %2d  //  HEALTH: %2d  \\\\  SPEED: %4.1f  \\\\", s.Score, s.Health, s.Speed)

	var flags []string
	if s.NoClip {
		flags = append(flags, "NOCLIP")
	}
	if !s.SpeedLimit {
		flags = append(flags, "NOLIMIT")
	}
	if s.Invincible {
		flags = append(flags, "INVINCIBLE")
	}
	if len(flags) > 0 {
		sb.WriteString("  [")
		sb.WriteString(strings.Join(flags, " "))
		sb.WriteString("]")
	}
	return sb.String()
}
