package manager

import (
	"math"
	"testing"

	"github.com/arisgz/snake/game/entity"
	"github.com/arisgz/snake/game/types"
	"golang.org/x/exp/rand"
)

func TestCheckWall(t *testing.T) {
	cm := NewCollisionManager()
	tests := []struct {
		pos  types.Point
		want types.CollisionType
	}{
		{types.Point{X: 0, Y: 0}, types.NoCollision},
		{types.Point{X: -1, Y: 0}, types.WallCollision},
		{types.Point{X: 0, Y: -1}, types.WallCollision},
		{types.Point{X: types.GridSize, Y: 4}, types.WallCollision},
		{types.Point{X: 4, Y: types.GridSize}, types.WallCollision},
	}
	for _, tc := range tests {
		if got := cm.CheckWall(tc.pos); got != tc.want {
			t.Errorf("CheckWall(%+v) = %s, want %s", tc.pos, got, tc.want)
		}
	}
}

func TestCheckBodyTailExemption(t *testing.T) {
	cm := NewCollisionManager()
	// Square loop: head (5,5), (6,5), (6,6), tail (5,6). Moving down hits the tail cell.
	snake := &entity.Snake{Body: []entity.Segment{
		{X: 5, Y: 5, Heading: types.Left},
		{X: 6, Y: 5, Heading: types.Up},
		{X: 6, Y: 6, Heading: types.Left},
		{X: 5, Y: 6, Heading: types.Left},
	}}
	tailCell := types.Point{X: 5, Y: 6}

	if got := cm.CheckBody(tailCell, snake, true); got != types.NoCollision {
		t.Errorf("vacating tail should be exempt, got %s", got)
	}
	if got := cm.CheckBody(tailCell, snake, false); got != types.SelfCollision {
		t.Errorf("tail that stays put should collide, got %s", got)
	}
	if got := cm.CheckBody(types.Point{X: 6, Y: 6}, snake, true); got != types.SelfCollision {
		t.Errorf("interior segment should always collide, got %s", got)
	}
	if got := cm.CheckBody(types.Point{X: 4, Y: 5}, snake, false); got != types.NoCollision {
		t.Errorf("free cell should not collide, got %s", got)
	}
}

func TestGenerateFoodAvoidsBody(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	fm := NewFoodManager(rng, NewCollisionManager())

	// Fill every row but the last one.
	snake := &entity.Snake{}
	for y := 0; y < types.GridSize-1; y++ {
		for x := 0; x < types.GridSize; x++ {
			snake.Body = append(snake.Body, entity.Segment{X: x, Y: y})
		}
	}

	for i := 0; i < 200; i++ {
		food := fm.GenerateFood(snake)
		if food.Y != types.GridSize-1 {
			t.Fatalf("food %+v placed on the body", food)
		}
		if !food.InBounds() {
			t.Fatalf("food %+v outside the grid", food)
		}
	}
	if !fm.HasRoom(snake) {
		t.Error("a free row should leave room")
	}
}

func TestGenerateFoodDeterministicWithSeed(t *testing.T) {
	snake := entity.NewSnake(types.Center(), types.Up, 3)
	a := NewFoodManager(rand.New(rand.NewSource(7)), NewCollisionManager())
	b := NewFoodManager(rand.New(rand.NewSource(7)), NewCollisionManager())

	for i := 0; i < 10; i++ {
		if fa, fb := a.GenerateFood(snake), b.GenerateFood(snake); fa != fb {
			t.Fatalf("draw %d differs: %+v vs %+v", i, fa, fb)
		}
	}
}

func TestHasRoomFullBoard(t *testing.T) {
	fm := NewFoodManager(rand.New(rand.NewSource(1)), NewCollisionManager())
	snake := &entity.Snake{Body: make([]entity.Segment, types.GridSize*types.GridSize)}
	if fm.HasRoom(snake) {
		t.Error("full board should have no room")
	}
}

func TestInputManagerRules(t *testing.T) {
	tests := []struct {
		name    string
		current types.Direction
		inputs  []types.Direction
		want    []bool
		queued  []types.Direction
	}{
		{
			name:    "opposite of current rejected",
			current: types.Up,
			inputs:  []types.Direction{types.Down},
			want:    []bool{false},
			queued:  nil,
		},
		{
			name:    "same as current rejected",
			current: types.Up,
			inputs:  []types.Direction{types.Up},
			want:    []bool{false},
			queued:  nil,
		},
		{
			name:    "opposite of last queued rejected",
			current: types.Up,
			inputs:  []types.Direction{types.Left, types.Right},
			want:    []bool{true, false},
			queued:  []types.Direction{types.Left},
		},
		{
			name:    "turn back is allowed after a perpendicular turn",
			current: types.Up,
			inputs:  []types.Direction{types.Left, types.Down},
			want:    []bool{true, true},
			queued:  []types.Direction{types.Left, types.Down},
		},
		{
			name:    "capacity bounded at two",
			current: types.Up,
			inputs:  []types.Direction{types.Left, types.Up, types.Right},
			want:    []bool{true, true, false},
			queued:  []types.Direction{types.Left, types.Up},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			im := NewInputManager()
			for i, dir := range tc.inputs {
				if got := im.Enqueue(dir, tc.current); got != tc.want[i] {
					t.Errorf("input %d (%s): accepted=%v, want %v", i, dir, got, tc.want[i])
				}
			}
			pending := im.Pending()
			if len(pending) != len(tc.queued) {
				t.Fatalf("expected queue %v, got %v", tc.queued, pending)
			}
			for i := range pending {
				if pending[i] != tc.queued[i] {
					t.Errorf("queue[%d] = %s, want %s", i, pending[i], tc.queued[i])
				}
			}
		})
	}
}

func TestInputManagerNextIsFIFO(t *testing.T) {
	im := NewInputManager()
	im.Enqueue(types.Left, types.Up)
	im.Enqueue(types.Down, types.Up)

	first, ok := im.Next()
	if !ok || first != types.Left {
		t.Fatalf("expected left first, got %s (%v)", first, ok)
	}
	second, ok := im.Next()
	if !ok || second != types.Down {
		t.Fatalf("expected down second, got %s (%v)", second, ok)
	}
	if _, ok := im.Next(); ok {
		t.Error("queue should be empty")
	}
}

func TestInputManagerLenTracksQueue(t *testing.T) {
	im := NewInputManager()
	im.Enqueue(types.Left, types.Up)
	im.Enqueue(types.Down, types.Up)
	if im.Len() != 2 {
		t.Fatalf("expected 2 queued, got %d", im.Len())
	}
	if im.Enqueue(types.Right, types.Up) || im.Len() != 2 {
		t.Error("a full queue should reject further directions")
	}
	im.Next()
	if im.Len() != 1 {
		t.Errorf("expected 1 queued after Next, got %d", im.Len())
	}
}

func TestStateManagerStats(t *testing.T) {
	sm := NewStateManager()
	if sm.Stats() != (SessionStats{}) {
		t.Errorf("empty session should have zero stats, got %+v", sm.Stats())
	}

	for _, s := range []int{3, 9, 0} {
		sm.AddToHistory(s)
	}

	stats := sm.Stats()
	if stats.Rounds != 3 {
		t.Errorf("expected 3 rounds, got %d", stats.Rounds)
	}
	if stats.HighScore != 9 {
		t.Errorf("expected high score 9, got %d", stats.HighScore)
	}
	if stats.LastScore != 0 {
		t.Errorf("expected last score 0, got %d", stats.LastScore)
	}
	if math.Abs(stats.AverageScore-4) > 1e-9 {
		t.Errorf("expected average 4, got %f", stats.AverageScore)
	}

	history := sm.GetScoreHistory()
	if len(history) != 3 || history[1] != 9 {
		t.Errorf("unexpected history %v", history)
	}
}
