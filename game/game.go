package game

import (
	"io"
	"log/slog"
	"time"

	"github.com/arisgz/snake/game/manager"
	"github.com/arisgz/snake/game/types"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Options configures a Game.
type Options struct {
	Seed   uint64       // Food RNG seed (0 = time-based)
	Logger *slog.Logger // nil discards log output
	Now    time.Time    // Start time of the first round (zero = time.Now())
}

// Game owns the current round plus the services that outlive restarts:
// the food RNG, the session score history and the logger.
type Game struct {
	UUID  string // Id of the current round
	state *State

	seed         uint64
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	logger       *slog.Logger
}

// NewGame creates a game with a time-based seed.
func NewGame() *Game {
	return NewGameWithOptions(Options{})
}

// NewGameWithOptions creates a game and starts its first round.
func NewGameWithOptions(opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	collisionMgr := manager.NewCollisionManager()
	g := &Game{
		seed:         seed,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(rand.New(rand.NewSource(seed)), collisionMgr),
		stateMgr:     manager.NewStateManager(),
		logger:       logger,
	}
	g.startRound(now)
	return g
}

func (g *Game) startRound(now time.Time) {
	g.UUID = uuid.New().String()
	g.state = NewState(g.foodMgr, g.collisionMgr, now)
	g.logger.Info("round started",
		"round", g.UUID,
		"seed", g.seed,
		"head", g.state.Head(),
		"food", g.state.Food(),
	)
}

// State returns the current round. It is only valid until the next Restart.
func (g *Game) State() *State {
	return g.state
}

// Update ticks once if a full frame has passed since the last tick.
// Late frames never trigger catch-up ticks.
func (g *Game) Update(now time.Time) bool {
	s := g.state
	if s.over || now.Sub(s.lastTick) < types.FrameDuration {
		return false
	}

	score := s.score
	cause := s.Tick()
	s.lastTick = now

	if s.score > score {
		g.logger.Debug("food eaten",
			"round", g.UUID,
			"score", s.score,
			"length", s.snake.Len(),
			"next_food", s.food,
		)
	}
	if s.over {
		g.stateMgr.AddToHistory(s.score)
		g.logger.Info("game over",
			"round", g.UUID,
			"cause", cause.String(),
			"score", s.score,
			"length", s.snake.Len(),
			"ticks", s.ticks,
		)
	}
	return true
}

// Elapsed returns time since the last tick, clamped to [0, FrameDuration).
// It feeds render interpolation only.
func (g *Game) Elapsed(now time.Time) time.Duration {
	d := now.Sub(g.state.lastTick)
	if d < 0 {
		return 0
	}
	if d >= types.FrameDuration {
		return types.FrameDuration - time.Nanosecond
	}
	return d
}

// EnqueueDirection forwards a directional key to the current round.
func (g *Game) EnqueueDirection(dir types.Direction) bool {
	accepted := g.state.EnqueueDirection(dir)
	if !accepted {
		g.logger.Debug("direction rejected",
			"round", g.UUID,
			"direction", dir.String(),
			"current", g.state.direction.String(),
			"pending", len(g.state.Pending()),
		)
	}
	return accepted
}

// Restart discards the current round and starts a fresh one.
func (g *Game) Restart(now time.Time) {
	if !g.state.over {
		g.logger.Info("round abandoned",
			"round", g.UUID,
			"score", g.state.score,
		)
	}
	g.startRound(now)
}

// Session returns statistics over finished rounds.
func (g *Game) Session() manager.SessionStats {
	return g.stateMgr.Stats()
}

// ScoreHistory returns the final score of every finished round, oldest first.
func (g *Game) ScoreHistory() []int {
	return g.stateMgr.GetScoreHistory()
}

// Seed returns the food RNG seed.
func (g *Game) Seed() uint64 {
	return g.seed
}
