package world

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
)

func testConfig(w, h uint16, enemies ...float64) config.GameConfig {
	cfg := config.GameConfig{
		Arena:        config.ArenaConfig{Width: w, Height: h},
		TickInterval: 50 * time.Millisecond,
		Player:       config.PlayerConfig{Health: 10, X: 2, Y: 2},
	}
	for _, s := range enemies {
		cfg.Enemies = append(cfg.Enemies, config.EnemyConfig{Speed: s})
	}
	return cfg
}

func newTestGame(t *testing.T, cfg config.GameConfig) *Game {
	t.Helper()
	g, err := New(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NoError(t, g.Init())
	return g
}

func TestInitBuildsRing(t *testing.T) {
	g := newTestGame(t, testConfig(10, 10))

	for x := uint16(0); x < 10; x++ {
		assert.True(t, g.IsWall(core.NewPoint(x, uint16(0))), "top (%d, 0)", x)
		assert.True(t, g.IsWall(core.NewPoint(x, uint16(9))), "bottom (%d, 9)", x)
	}
	for y := uint16(0); y < 10; y++ {
		assert.True(t, g.IsWall(core.NewPoint(uint16(0), y)), "left (0, %d)", y)
		assert.True(t, g.IsWall(core.NewPoint(uint16(9), y)), "right (9, %d)", y)
	}
	// Corners are shared by two edges but stored once.
	assert.Len(t, g.Walls(), 36)

	c := g.Collectible().Position()
	assert.False(t, g.IsWall(c))
	assert.True(t, c.X >= 1 && c.X <= 8 && c.Y >= 1 && c.Y <= 8, "collectible at %v", c)
}

func TestInitPlacesEnemiesInside(t *testing.T) {
	g := newTestGame(t, testConfig(20, 12, 0.1, 0.2, 0.3, 0.4))

	for i, e := range g.Enemies() {
		p := e.Position()
		assert.GreaterOrEqual(t, p.X, 1.0, "enemy %d", i)
		assert.Less(t, p.X, 19.0, "enemy %d", i)
		assert.GreaterOrEqual(t, p.Y, 1.0, "enemy %d", i)
		assert.Less(t, p.Y, 11.0, "enemy %d", i)
	}
}

func TestInitTwice(t *testing.T) {
	g := newTestGame(t, testConfig(10, 10))
	assert.Error(t, g.Init())
}

func TestNewErrors(t *testing.T) {
	_, err := New(testConfig(2, 10), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, config.ErrArenaTooSmall)

	_, err = New(testConfig(10, 10), nil)
	assert.Error(t, err)
}

func TestInitNoFreeCell(t *testing.T) {
	// A single interior cell that the random wall is bound to land on.
	cfg := testConfig(3, 3)
	cfg.Arena.RandomWalls = 1
	cfg.Player.X, cfg.Player.Y = 1, 1

	g, err := New(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.ErrorIs(t, g.Init(), ErrNoFreeCell)
}

func TestPlacementFallsBackToScan(t *testing.T) {
	// One free interior cell in an otherwise walled 8x8 interior.
	cfg := testConfig(10, 10)
	cfg.Player.X, cfg.Player.Y = 8, 8
	for y := uint16(1); y <= 8; y++ {
		for x := uint16(1); x <= 8; x++ {
			if x != 8 || y != 8 {
				cfg.Walls = append(cfg.Walls, config.WallConfig{X: x, Y: y})
			}
		}
	}

	for seed := int64(0); seed < 5; seed++ {
		g, err := New(cfg, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		g.attempts = 0 // Skip random draws entirely
		require.NoError(t, g.Init())
		assert.Equal(t, core.NewPoint(uint16(8), uint16(8)), g.Collectible().Position(), "seed %d", seed)

		// Relocation after a pickup takes the same path.
		res := g.Step()
		require.True(t, res.Picked)
		assert.Equal(t, core.NewPoint(uint16(8), uint16(8)), g.Collectible().Position(), "seed %d", seed)
	}
}

func TestPlacementScanAfterMisses(t *testing.T) {
	cfg := testConfig(4, 3)
	cfg.Walls = []config.WallConfig{{X: 1, Y: 1}}
	cfg.Player.X, cfg.Player.Y = 2, 1

	g, err := New(cfg, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	g.attempts = 1
	require.NoError(t, g.Init())

	for range 100 {
		require.NoError(t, g.placeCollectible())
		assert.Equal(t, core.NewPoint(uint16(2), uint16(1)), g.Collectible().Position())
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig(30, 20, 0.1, 0.25, 0.4)
	cfg.Arena.RandomWalls = 25
	cfg.Player.X, cfg.Player.Y = 15, 10

	script := map[int]core.Action{
		0:  core.ActionAccelerate,
		1:  core.ActionAccelerate,
		5:  core.ActionTurnRight,
		12: core.ActionToggleNoClip,
		20: core.ActionTurnLeft,
		21: core.ActionTurnLeft,
		30: core.ActionAccelerate,
		45: core.ActionDecelerate,
	}

	run := func() []Snapshot {
		g, err := New(cfg, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		require.NoError(t, g.Init())

		snaps := []Snapshot{g.Snapshot()}
		for i := range 60 {
			if a, ok := script[i]; ok {
				g.Apply(a)
			}
			g.Step()
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	first, second := run(), run()
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i], second[i], "snapshot %d differs", i)
	}
}

func TestStepScenario(t *testing.T) {
	g := newTestGame(t, testConfig(10, 10, 0.5))

	enemy := g.Enemies()[0]
	enemy.SetPosition(core.NewPoint(5.0, 5.0))
	g.Collectible().SetPosition(core.NewPoint(uint16(8), uint16(8)))

	before := core.Length(core.Sub(core.NewPoint(2.1, 2.0), enemy.Position()))

	g.Apply(core.ActionAccelerate)
	assert.InDelta(t, 0.1, g.Player().Speed(), 1e-9)

	res := g.Step()

	p := g.Player().Position()
	assert.InDelta(t, 2.1, p.X, 1e-9)
	assert.InDelta(t, 2.0, p.Y, 1e-9)

	after := core.Length(core.Sub(p, enemy.Position()))
	assert.InDelta(t, before-0.5, after, 1e-9)

	assert.True(t, res.Moved)
	assert.False(t, res.Picked)
	assert.Zero(t, res.Hits)
	assert.Equal(t, uint64(1), res.Tick)
	assert.Equal(t, uint32(0), g.Score())
	assert.Equal(t, uint8(10), g.Player().Health())
}

func TestStepWallBlocks(t *testing.T) {
	cfg := testConfig(10, 10)
	cfg.Player.X, cfg.Player.Y = 1.5, 5
	cfg.Player.Sector = 4
	cfg.Player.Speed = 1
	g := newTestGame(t, cfg)
	g.Collectible().SetPosition(core.NewPoint(uint16(8), uint16(8)))

	res := g.Step()
	assert.False(t, res.Moved)
	assert.InDelta(t, 1.5, g.Player().Position().X, 1e-9)

	g.Apply(core.ActionToggleNoClip)
	res = g.Step()
	assert.True(t, res.Moved)
	assert.InDelta(t, 0.5, g.Player().Position().X, 1e-9)
}

func TestStepPickup(t *testing.T) {
	cfg := testConfig(10, 10)
	cfg.Arena.RandomWalls = 30
	g := newTestGame(t, cfg)

	for i := 0; i < 200; i++ {
		g.Collectible().SetPosition(core.CellOf(g.Player().Position()))
		res := g.Step()
		require.True(t, res.Picked, "step %d", i)

		c := g.Collectible().Position()
		assert.False(t, g.IsWall(c), "collectible on wall at %v", c)
		assert.True(t, c.X >= 1 && c.X <= 8 && c.Y >= 1 && c.Y <= 8, "collectible at %v", c)
	}
	assert.Equal(t, uint32(200), g.Score())
}

func TestStepEnemiesHitIndependently(t *testing.T) {
	cfg := testConfig(10, 10, 0, 0, 0)
	cfg.Player.X, cfg.Player.Y = 5, 5
	g := newTestGame(t, cfg)
	g.Collectible().SetPosition(core.NewPoint(uint16(8), uint16(8)))

	enemies := g.Enemies()
	enemies[0].SetPosition(core.NewPoint(5.0, 5.0))
	enemies[1].SetPosition(core.NewPoint(5.3, 4.8))
	enemies[2].SetPosition(core.NewPoint(7.0, 7.0))

	res := g.Step()
	assert.Equal(t, 2, res.Hits)
	assert.Equal(t, uint8(8), res.Health)

	g.Apply(core.ActionToggleInvincibility)
	res = g.Step()
	assert.Equal(t, 2, res.Hits)
	assert.Equal(t, uint8(8), res.Health)
}

func TestStepCollisionIgnoresHeading(t *testing.T) {
	cfg := testConfig(10, 10, 0)
	cfg.Player.X, cfg.Player.Y = 5, 5
	g := newTestGame(t, cfg)
	g.Collectible().SetPosition(core.NewPoint(uint16(8), uint16(8)))
	g.Enemies()[0].SetPosition(core.NewPoint(5.0, 5.0))

	g.Apply(core.ActionTurnRight)
	g.Apply(core.ActionTurnRight)

	res := g.Step()
	assert.Equal(t, 1, res.Hits)
}

func TestApplyIgnoresQuit(t *testing.T) {
	g := newTestGame(t, testConfig(10, 10))
	before := g.Snapshot()

	g.Apply(core.ActionQuit)
	g.Apply(core.ActionNone)

	assert.Equal(t, before, g.Snapshot())
}

func TestSnapshotRender(t *testing.T) {
	cfg := testConfig(10, 6, 0)
	cfg.Player.X, cfg.Player.Y = 2, 2
	g := newTestGame(t, cfg)
	g.Collectible().SetPosition(core.NewPoint(uint16(7), uint16(3)))
	g.Enemies()[0].SetPosition(core.NewPoint(4.4, 3.6))

	snap := g.Snapshot()
	w, h := snap.ScreenSize()
	require.Equal(t, len(snap.HUD()), w, "HUD is wider than the arena")
	require.Equal(t, 6+core.HUDRows, h)

	scr := core.NewScreen(w, h)
	snap.Render(scr)

	assert.Equal(t, GlyphWall, scr.Get(0, 0))
	assert.Equal(t, core.ColorMagenta, scr.GetCell(9, 5).Color)
	assert.Equal(t, GlyphPlayer, scr.Get(2, 2))
	assert.Equal(t, '😐', scr.Get(4, 2))
	assert.Equal(t, core.ColorBrightYellow, scr.GetCell(4, 2).Color)
	assert.Equal(t, GlyphEnemy, scr.Get(4, 4))
	assert.Equal(t, GlyphCollectible, scr.Get(7, 3))
	assert.Equal(t, core.ColorRed, scr.GetCell(7, 3).Color)

	// The HUD sits on the last reserved row, leaving a blank row above it.
	assert.Equal(t, strings.Repeat(" ", w), scr.Row(7))
	assert.Equal(t, snap.HUD(), scr.Row(8))
}

func TestSnapshotNarrowArenaShowsFullHUD(t *testing.T) {
	snap := Snapshot{
		Width:      5,
		Height:     3,
		Score:      12,
		Health:     4,
		Speed:      2.5,
		NoClip:     true,
		Invincible: true,
		Face:       '😞',
		Player:     core.NewPoint(1.0, 1.0),
	}

	w, h := snap.ScreenSize()
	hud := snap.HUD()
	require.Equal(t, len(hud), w)

	scr := core.NewScreen(w, h)
	snap.Render(scr)
	assert.Equal(t, hud, scr.Row(h-1))
	assert.Contains(t, scr.Row(h-1), "HEALTH:  4")
	assert.True(t, strings.HasSuffix(scr.Row(h-1), "[NOCLIP NOLIMIT INVINCIBLE]"))
}

func TestSnapshotHUDFlags(t *testing.T) {
	s := Snapshot{Score: 3, Health: 7, Speed: 0.5, SpeedLimit: true}
	assert.Equal(t, `//  SCORE:  3  //  HEALTH:  7  \\  SPEED:  0.5  \\`, s.HUD())

	s.NoClip = true
	s.SpeedLimit = false
	s.Invincible = true
	assert.True(t, strings.HasSuffix(s.HUD(), "[NOCLIP NOLIMIT INVINCIBLE]"), s.HUD())
}
