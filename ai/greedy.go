// Package ai picks headings for AI snakes with a one-step greedy search:
// filter out unsafe moves, then step toward the food by Manhattan distance.
package ai

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// Decision is the outcome of one planning step
type Decision struct {
	Direction types.Direction
	SafeMoves int // Candidates left after filtering
	Distance  int // Manhattan distance from the chosen cell to food, -1 if cornered
}

// Cornered reports whether no candidate survived the safety filter
func (d Decision) Cornered() bool {
	return d.SafeMoves == 0
}

// Decide returns the heading self should take this step
func Decide(self *entity.Snake, food types.Point, snakes []*entity.Snake, grid types.Grid) types.Direction {
	return Plan(self, food, snakes, grid).Direction
}

// Plan runs the heuristic and keeps the bookkeeping. It never mutates self.
func Plan(self *entity.Snake, food types.Point, snakes []*entity.Snake, grid types.Grid) Decision {
	safe := SafeMoves(self, snakes, grid)
	if len(safe) == 0 {
		return Decision{Direction: self.Direction, Distance: -1}
	}

	head := self.GetHead()
	best := safe[0]
	bestDistance := manhattanDistance(head.Add(best), food)
	for _, move := range safe[1:] {
		if d := manhattanDistance(head.Add(move), food); d < bestDistance {
			best, bestDistance = move, d
		}
	}

	return Decision{Direction: best, SafeMoves: len(safe), Distance: bestDistance}
}

// SafeMoves lists, in Up, Down, Left, Right order, the headings that do not
// reverse, leave the grid, hit another snake, or hit self.Body[1:]. This is
// stricter than the collision check a move is later subjected to.
func SafeMoves(self *entity.Snake, snakes []*entity.Snake, grid types.Grid) []types.Direction {
	occupied := make(map[types.Point]struct{})
	for _, snake := range snakes {
		if snake == nil || snake == self {
			continue
		}
		for _, part := range snake.Body {
			occupied[part] = struct{}{}
		}
	}

	head := self.GetHead()
	reverse := self.Direction.Opposite()
	safe := make([]types.Direction, 0, len(types.Directions))

	for _, move := range types.Directions {
		if move == reverse {
			continue
		}
		next := head.Add(move)
		if !grid.InBounds(next) {
			continue
		}
		if _, hit := occupied[next]; hit {
			continue
		}
		if onBody(self.Body[1:], next) {
			continue
		}
		safe = append(safe, move)
	}
	return safe
}

func onBody(body []types.Point, p types.Point) bool {
	for _, part := range body {
		if part == p {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// manhattanDistance is the grid distance between two cells, no wrapping
func manhattanDistance(p1, p2 types.Point) int {
	return abs(p2.X-p1.X) + abs(p2.Y-p1.Y)
}
