package entity

import (
	"testing"

	"snake-arena/game/types"

	"golang.org/x/exp/rand"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func bodyOf(points ...types.Point) []types.Point {
	return append([]types.Point(nil), points...)
}

// TestResetState verifies the spawn state of a fresh snake
func TestResetState(t *testing.T) {
	rng := newRNG()
	spawn := types.Point{X: 12, Y: 12}
	s := NewPlayer(0, spawn, 1, rng)

	if len(s.Body) != 1 || s.GetHead() != spawn {
		t.Fatalf("Expected body [%v], got %v", spawn, s.Body)
	}
	if s.Length != 1 || s.Score != 0 || s.Dead {
		t.Errorf("Expected length 1, score 0, alive; got %d, %d, dead=%v", s.Length, s.Score, s.Dead)
	}
	if s.AI != nil {
		t.Error("Expected player to carry no AI state")
	}

	found := false
	for _, d := range types.Directions {
		if s.Direction == d {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a cardinal direction, got %v", s.Direction)
	}

	s.Score = 9
	s.Length = 6
	s.Reset(types.Point{X: 1, Y: 1}, 3, rng)
	if s.Score != 0 || s.Length != 3 || s.GetHead() != (types.Point{X: 1, Y: 1}) {
		t.Errorf("Reset did not restore spawn state: %+v", s)
	}
}

// TestResetDirectionsCoverAll checks the initial heading is drawn from all four
func TestResetDirectionsCoverAll(t *testing.T) {
	rng := newRNG()
	seen := map[types.Direction]bool{}
	s := NewAI(1, types.Point{X: 5, Y: 5}, 1, rng)
	for i := 0; i < 200; i++ {
		s.Reset(s.Spawn, 1, rng)
		seen[s.Direction] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected all 4 directions over 200 resets, saw %v", seen)
	}
}

// TestWallCollisionLeavesBody covers every wall for several grid sizes
func TestWallCollisionLeavesBody(t *testing.T) {
	for _, n := range []int{4, 5, 10, 25} {
		grid := types.NewSquareGrid(n)
		cases := []struct {
			head types.Point
			dir  types.Direction
		}{
			{types.Point{X: 0, Y: n / 2}, types.Left},
			{types.Point{X: n - 1, Y: n / 2}, types.Right},
			{types.Point{X: n / 2, Y: 0}, types.Up},
			{types.Point{X: n / 2, Y: n - 1}, types.Down},
		}
		for _, c := range cases {
			s := &Snake{Body: bodyOf(c.head), Length: 1, Direction: c.dir}
			if s.TryMove(grid, []*Snake{s}) {
				t.Errorf("N=%d: expected move %v from %v to fail", n, c.dir, c.head)
			}
			if len(s.Body) != 1 || s.Body[0] != c.head {
				t.Errorf("N=%d: expected body unchanged, got %v", n, s.Body)
			}
			if _, col := s.CheckMove(grid, nil); col != types.WallCollision {
				t.Errorf("N=%d: expected wall collision, got %v", n, col)
			}
		}
	}
}

// TestMoveTrimsTail checks growth and trimming
func TestMoveTrimsTail(t *testing.T) {
	grid := types.NewSquareGrid(10)
	s := &Snake{Body: bodyOf(types.Point{X: 5, Y: 5}), Length: 1, Direction: types.Right}

	if !s.TryMove(grid, []*Snake{s}) {
		t.Fatal("Expected move to succeed")
	}
	if len(s.Body) != 1 || s.GetHead() != (types.Point{X: 6, Y: 5}) {
		t.Errorf("Expected single cell at (6,5), got %v", s.Body)
	}

	s.Grow()
	s.TryMove(grid, nil)
	want := []types.Point{{X: 7, Y: 5}, {X: 6, Y: 5}}
	if len(s.Body) != 2 || s.Body[0] != want[0] || s.Body[1] != want[1] {
		t.Errorf("Expected %v, got %v", want, s.Body)
	}

	s.TryMove(grid, nil)
	if len(s.Body) != 2 || s.GetHead() != (types.Point{X: 8, Y: 5}) {
		t.Errorf("Expected length to hold at 2, got %v", s.Body)
	}
}

// TestRecentSegmentsNeverCollide is the regression test for the
// SelfCollisionSkip leniency: reversing into the neck is not a collision.
func TestRecentSegmentsNeverCollide(t *testing.T) {
	grid := types.NewSquareGrid(25)
	for length := 2; length <= 8; length++ {
		body := make([]types.Point, length)
		for i := range body {
			body[i] = types.Point{X: 10 + i, Y: 10}
		}
		s := &Snake{Body: body, Length: length, Direction: types.Right}
		if _, col := s.CheckMove(grid, nil); col != types.NoCollision {
			t.Errorf("Length %d: expected reversal onto the neck to be allowed, got %v", length, col)
		}
		if !s.TryMove(grid, []*Snake{s}) {
			t.Errorf("Length %d: expected move to succeed", length)
		}
		if s.GetHead() != (types.Point{X: 11, Y: 10}) {
			t.Errorf("Length %d: expected head (11,10), got %v", length, s.GetHead())
		}
	}
}

// TestFourthSegmentCollides closes a 2x2 loop into Body[3]
func TestFourthSegmentCollides(t *testing.T) {
	grid := types.NewSquareGrid(10)
	s := &Snake{
		Body:      bodyOf(types.Point{X: 5, Y: 5}, types.Point{X: 5, Y: 6}, types.Point{X: 6, Y: 6}, types.Point{X: 6, Y: 5}),
		Length:    4,
		Direction: types.Right,
	}
	before := s.Cells()
	if _, col := s.CheckMove(grid, nil); col != types.SelfCollision {
		t.Errorf("Expected self collision, got %v", col)
	}
	if s.TryMove(grid, nil) {
		t.Error("Expected move into Body[3] to fail")
	}
	for i := range before {
		if s.Body[i] != before[i] {
			t.Fatalf("Expected body unchanged, got %v", s.Body)
		}
	}
}

// TestOtherSnakeFullBody checks heads and tails of other snakes block
func TestOtherSnakeFullBody(t *testing.T) {
	grid := types.NewSquareGrid(10)
	other := &Snake{Body: bodyOf(types.Point{X: 3, Y: 3}, types.Point{X: 3, Y: 4}, types.Point{X: 3, Y: 5}), Length: 3}

	for _, target := range other.Body {
		s := &Snake{Body: bodyOf(types.Point{X: target.X - 1, Y: target.Y}), Length: 1, Direction: types.Right}
		if s.TryMove(grid, []*Snake{s, other}) {
			t.Errorf("Expected collision with other snake at %v", target)
		}
		if _, col := s.CheckMove(grid, []*Snake{other}); col != types.AgentCollision {
			t.Errorf("Expected agent collision at %v, got %v", target, col)
		}
	}
}

// TestSelfExcludedByIdentity ensures a copy with equal cells still blocks
func TestSelfExcludedByIdentity(t *testing.T) {
	grid := types.NewSquareGrid(10)
	s := &Snake{Body: bodyOf(types.Point{X: 2, Y: 2}, types.Point{X: 1, Y: 2}), Length: 2, Direction: types.Right}
	twin := &Snake{Body: bodyOf(types.Point{X: 3, Y: 2}), Length: 1}

	if _, col := s.CheckMove(grid, []*Snake{s, twin}); col != types.AgentCollision {
		t.Errorf("Expected distinct snake on (3,2) to block, got %v", col)
	}
	if !s.TryMove(grid, []*Snake{s}) {
		t.Error("Expected snake to ignore its own entry in the slice")
	}
}

func TestSetDirection(t *testing.T) {
	s := &Snake{Body: bodyOf(types.Point{}), Length: 1, Direction: types.Up}
	if s.SetDirection(types.Down) {
		t.Error("Expected reversal to be rejected")
	}
	if s.SetDirection(types.None) {
		t.Error("Expected None to be rejected")
	}
	if !s.SetDirection(types.Left) || s.Direction != types.Left {
		t.Errorf("Expected Left, got %v", s.Direction)
	}
	if !s.SetDirection(types.Left) {
		t.Error("Expected same direction to be accepted")
	}
}
