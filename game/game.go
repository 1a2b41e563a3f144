package game

import (
	"time"

	"github.com/google/uuid"

	"snake-walk/game/entity"
	"snake-walk/game/manager"
	"snake-walk/game/types"
)

// Frame is what the renderer gets each tick. Segments is a copy.
type Frame struct {
	ID       string
	Tick     uint64
	Heading  entity.Direction
	Segments []types.Rect
	GameOver bool
}

// Game is one simulation session: a single snake driven by the host loop
// until its head reaches a surface edge.
type Game struct {
	ID     string
	Config Config
	Snake  *entity.Snake

	ticks        uint64
	stateMgr     *manager.StateManager
	collisionMgr *manager.CollisionManager
	clock        *Clock
	latch        inputLatch
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		ID:           uuid.New().String(),
		Config:       cfg,
		Snake:        entity.NewSnake(cfg.Origin, cfg.InitialLength, cfg.SegmentSize, cfg.Step()),
		stateMgr:     manager.NewStateManager(),
		collisionMgr: manager.NewCollisionManager(types.Size{}),
		clock:        NewClock(cfg.TickInterval),
	}, nil
}

// Tick runs one simulation step against the current surface size: read
// input, turn, test the head against the edges, then advance unless the
// session is over.
func (g *Game) Tick(in Input, bounds types.Size) {
	if dir, ok := ReadDirection(in, g.Config.UnifiedHeld); ok {
		g.Snake.SetHeading(dir)
	}

	g.collisionMgr.SetBounds(bounds)
	if !g.stateMgr.IsOver() && g.collisionMgr.CheckHead(g.Snake) {
		g.stateMgr.End(g.ticks)
	}

	if !g.stateMgr.IsOver() {
		g.Snake.Advance()
	}
	g.ticks++
}

// Update is the per-frame entry point for the host loop. It runs as many
// ticks as dt pays for and returns how many ran.
func (g *Game) Update(dt time.Duration, in Input, bounds types.Size) int {
	g.latch.observe(in)
	n := g.clock.Accumulate(dt)
	for i := 0; i < n; i++ {
		g.Tick(&g.latch, bounds)
		g.latch.clear()
	}
	return n
}

func (g *Game) Frame() Frame {
	return Frame{
		ID:       g.ID,
		Tick:     g.ticks,
		Heading:  g.Snake.Heading,
		Segments: g.Snake.Segments(),
		GameOver: g.stateMgr.IsOver(),
	}
}

func (g *Game) IsOver() bool {
	return g.stateMgr.IsOver()
}

func (g *Game) State() manager.State {
	return g.stateMgr.State()
}

// EndedAt returns the tick on which the head touched an edge.
func (g *Game) EndedAt() (uint64, bool) {
	return g.stateMgr.EndedAt()
}

func (g *Game) Ticks() uint64 {
	return g.ticks
}
