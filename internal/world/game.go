// Package world holds the arena and its entities and advances the simulation
// one fixed tick at a time.
package world

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/entity"
)

// maxPlacementAttempts bounds random draws before falling back to a scan.
const maxPlacementAttempts = 1000

// ErrNoFreeCell is returned when every interior cell is a wall.
var ErrNoFreeCell = errors.New("world: no free interior cell")

// cellKey identifies a grid cell independent of heading.
type cellKey struct {
	x, y uint16
}

func keyOf(p core.Point2D[uint16]) cellKey {
	return cellKey{x: p.X, y: p.Y}
}

// StepResult describes what happened during one simulation tick.
type StepResult struct {
	Tick   uint64
	Score  uint32
	Health uint8
	Moved  bool // Player committed its forward move
	Picked bool // Player collected the item
	Hits   int  // Enemies that hit the player this tick
}

// Game owns the arena, every entity and the score.
type Game struct {
	width        uint16
	height       uint16
	randomWalls  int
	tickInterval time.Duration
	rng          *rand.Rand
	attempts     int // Random draws before placeCollectible scans

	player      *entity.Player
	enemies     []*entity.Enemy
	walls       []*entity.Wall
	wallCells   map[cellKey]bool
	collectible *entity.Collectible

	score       uint32
	tick        uint64
	initialized bool
}

// New builds a game from a validated configuration. Call Init before Step.
func New(cfg config.GameConfig, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("world: nil random source")
	}

	start := core.NewPoint(cfg.Player.X, cfg.Player.Y)
	start.Heading = core.HeadingFor(cfg.Player.Sector)

	g := &Game{
		width:        cfg.Arena.Width,
		height:       cfg.Arena.Height,
		randomWalls:  cfg.Arena.RandomWalls,
		tickInterval: cfg.TickInterval,
		rng:          rng,
		attempts:     maxPlacementAttempts,
		player:       entity.NewPlayer(start, cfg.Player.Speed, cfg.Player.Health),
		wallCells:    make(map[cellKey]bool),
		collectible:  entity.NewCollectible(0, 0),
	}

	for _, e := range cfg.Enemies {
		g.enemies = append(g.enemies, entity.NewEnemy(e.Speed))
	}
	for _, w := range cfg.Walls {
		g.addWall(w.X, w.Y)
	}

	return g, nil
}

// Init surrounds the arena with walls, scatters random walls, randomizes
// enemy positions and places the collectible.
func (g *Game) Init() error {
	if g.initialized {
		return errors.New("world: already initialized")
	}

	// Surround the game area with walls
	for x := uint16(0); x < g.width; x++ {
		g.addWall(x, 0)
		g.addWall(x, g.height-1)
	}
	for y := uint16(0); y < g.height; y++ {
		g.addWall(0, y)
		g.addWall(g.width-1, y)
	}

	// Add random walls
	xr, yr := g.interiorRange()
	for range g.randomWalls {
		w := entity.NewWall(0, 0)
		entity.SetRandomPosition[uint16](w, g.rng, xr, yr)
		g.addWall(w.Position().X, w.Position().Y)
	}

	// Randomize enemy positions
	fxr := core.Range[float64]{Min: 1, Max: float64(g.width - 1)}
	fyr := core.Range[float64]{Min: 1, Max: float64(g.height - 1)}
	for _, e := range g.enemies {
		entity.SetRandomPosition[float64](e, g.rng, fxr, fyr)
	}

	if err := g.placeCollectible(); err != nil {
		return err
	}

	g.initialized = true
	return nil
}

// addWall places a wall unless one already occupies the cell.
func (g *Game) addWall(x, y uint16) {
	k := cellKey{x: x, y: y}
	if g.wallCells[k] {
		return
	}
	g.wallCells[k] = true
	g.walls = append(g.walls, entity.NewWall(x, y))
}

// interiorRange returns the half-open ranges covering cells inside the ring.
func (g *Game) interiorRange() (core.Range[uint16], core.Range[uint16]) {
	return core.Range[uint16]{Min: 1, Max: g.width - 1},
		core.Range[uint16]{Min: 1, Max: g.height - 1}
}

// IsWall reports whether a wall occupies the cell.
func (g *Game) IsWall(c core.Point2D[uint16]) bool {
	return g.wallCells[keyOf(c)]
}

// placeCollectible moves the collectible to a random interior cell that is
// not a wall. After g.attempts misses it picks uniformly among the remaining
// free cells.
func (g *Game) placeCollectible() error {
	xr, yr := g.interiorRange()
	for range g.attempts {
		entity.SetRandomPosition[uint16](g.collectible, g.rng, xr, yr)
		if !g.IsWall(g.collectible.Position()) {
			return nil
		}
	}

	var free []core.Point2D[uint16]
	for y := yr.Min; y < yr.Max; y++ {
		for x := xr.Min; x < xr.Max; x++ {
			c := core.NewPoint(x, y)
			if !g.IsWall(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return ErrNoFreeCell
	}
	g.collectible.SetPosition(free[g.rng.Intn(len(free))])
	return nil
}

// Step advances the simulation by one tick:
//  1. move the player unless a wall blocks the forward cell (no-clip ignores walls)
//  2. collect the item when standing on it
//  3. every enemy steps toward the player's new position
//  4. every enemy sharing the player's cell deals one damage
func (g *Game) Step() StepResult {
	g.tick++
	res := StepResult{Tick: g.tick}

	if !g.IsWall(g.player.ForwardCell()) || g.player.NoClip() {
		g.player.MoveForward()
		res.Moved = true
	}

	if core.CellOf(g.player.Position()).SameCell(g.collectible.Position()) {
		g.score++
		res.Picked = true
		if err := g.placeCollectible(); err != nil {
			// Init already proved a free cell exists and walls never change.
			panic(fmt.Sprintf("world: relocate collectible: %v", err))
		}
	}

	target := g.player.Position()
	for _, e := range g.enemies {
		e.Pursue(target)
	}

	playerCell := core.Round(target)
	for _, e := range g.enemies {
		if core.Round(e.Position()).SameCell(playerCell) {
			g.player.TakeDamage(1)
			res.Hits++
		}
	}

	res.Score = g.score
	res.Health = g.player.Health()
	return res
}

// Apply dispatches a player action. Quit and unknown actions are ignored
// here; the loop driver owns the quit flag.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionTurnLeft:
		g.player.TurnLeft()
	case core.ActionTurnRight:
		g.player.TurnRight()
	case core.ActionAccelerate:
		g.player.Accelerate()
	case core.ActionDecelerate:
		g.player.Decelerate()
	case core.ActionToggleNoClip:
		g.player.ToggleNoClip()
	case core.ActionToggleSpeedLimit:
		g.player.ToggleSpeedLimit()
	case core.ActionToggleInvincibility:
		g.player.ToggleInvincibility()
	}
}

// Player returns the player.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Enemies returns the enemies in construction order.
func (g *Game) Enemies() []*entity.Enemy {
	return g.enemies
}

// Walls returns every wall, ring included once Init has run.
func (g *Game) Walls() []*entity.Wall {
	return g.walls
}

// Collectible returns the collectible.
func (g *Game) Collectible() *entity.Collectible {
	return g.collectible
}

// Score returns the number of items collected.
func (g *Game) Score() uint32 {
	return g.score
}

// Tick returns how many steps have run.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Size returns the arena dimensions.
func (g *Game) Size() (width, height uint16) {
	return g.width, g.height
}

// TickInterval returns the configured tick length.
func (g *Game) TickInterval() time.Duration {
	return g.tickInterval
}
