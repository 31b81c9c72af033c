package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/vi-snake/grid"
)

// contiguousLine reports whether cells form a straight adjacent run on the torus
func contiguousLine(g grid.Grid, cells []grid.Cell) bool {
	var dir grid.Direction
	found := false
	for _, d := range grid.Directions {
		if g.Step(cells[0], d) == cells[1] {
			dir, found = d, true
			break
		}
	}
	if !found {
		return false
	}
	for i := 1; i < len(cells)-1; i++ {
		if g.Step(cells[i], dir) != cells[i+1] {
			return false
		}
	}
	return true
}

// TestEnemySpawnShape verifies spawned enemies are straight and avoid the snake
func TestEnemySpawnShape(t *testing.T) {
	g := grid.New(12, 9)
	rng := rand.New(rand.NewPCG(1, 2))
	snake := []grid.Cell{{X: 5, Y: 4}, {X: 4, Y: 4}, {X: 3, Y: 4}}

	for i := 0; i < 200; i++ {
		var e Enemy
		if !e.spawn(g, rng, snake, 100, 10, 3) {
			t.Fatalf("Spawn %d failed on a mostly empty board", i)
		}
		if !contiguousLine(g, e.Cells[:]) {
			t.Fatalf("Spawn %d not a straight line: %v", i, e.Cells)
		}
		if overlapsAny(e.Cells[:], snake) {
			t.Fatalf("Spawn %d overlaps snake: %v", i, e.Cells)
		}
		if e.Lifetime != 10 || e.Countdown != 3 || !e.Active || !e.Spawned {
			t.Fatalf("Spawn %d bad counters: %+v", i, e)
		}
	}
}

// TestEnemyStaysRigid verifies every move keeps three distinct adjacent cells
func TestEnemyStaysRigid(t *testing.T) {
	g := grid.New(7, 5)
	rng := rand.New(rand.NewPCG(3, 4))

	var e Enemy
	if !e.spawn(g, rng, nil, 100, 10_000, 1) {
		t.Fatal("Spawn failed")
	}
	for i := 0; i < 2000; i++ {
		e.advance(g, rng, 1)
		c := e.Cells
		if c[0] == c[1] || c[1] == c[2] || c[0] == c[2] {
			t.Fatalf("Move %d: cells collapsed %v", i, c)
		}
		for j := 0; j < len(c)-1; j++ {
			adjacent := false
			for _, n := range g.Neighbors(c[j]) {
				if n == c[j+1] {
					adjacent = true
				}
			}
			if !adjacent {
				t.Fatalf("Move %d: cells %v and %v not adjacent", i, c[j], c[j+1])
			}
		}
	}
}

// TestEnemyFoldTurnsAround verifies a heading into the second cell reverses the worm
func TestEnemyFoldTurnsAround(t *testing.T) {
	g := grid.New(10, 10)
	e := Enemy{Cells: [3]grid.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, Active: true}

	e.step(g, grid.Left)

	want := [3]grid.Cell{{X: 2, Y: 5}, {X: 3, Y: 5}, {X: 4, Y: 5}}
	if e.Cells != want {
		t.Errorf("Expected %v, got %v", want, e.Cells)
	}
}

// TestEnemyMoveCadence verifies steps happen every interval ticks
func TestEnemyMoveCadence(t *testing.T) {
	g := grid.New(10, 10)
	rng := rand.New(rand.NewPCG(5, 6))

	var e Enemy
	e.spawn(g, rng, nil, 100, 100, 3)

	moves := 0
	for i := 1; i <= 12; i++ {
		moved, _ := e.advance(g, rng, 3)
		if moved {
			moves++
			if i%3 != 0 {
				t.Errorf("Moved on tick %d, expected multiples of 3", i)
			}
		}
	}
	if moves != 4 {
		t.Errorf("Expected 4 moves in 12 ticks, got %d", moves)
	}
}

// TestEnemyExpires verifies lifetime countdown deactivates the enemy
func TestEnemyExpires(t *testing.T) {
	g := grid.New(10, 10)
	rng := rand.New(rand.NewPCG(7, 8))

	var e Enemy
	e.spawn(g, rng, nil, 100, 5, 2)

	for i := 1; i <= 5; i++ {
		_, expired := e.advance(g, rng, 2)
		if expired != (i == 5) {
			t.Errorf("Tick %d: expired=%v", i, expired)
		}
	}
	if e.Active {
		t.Error("Enemy still active after lifetime")
	}
	if !e.Spawned {
		t.Error("Spawn latch cleared on expiry")
	}
	if e.Occupies(e.Cells[0]) {
		t.Error("Inactive enemy still occupies cells")
	}
	if moved, expired := e.advance(g, rng, 2); moved || expired {
		t.Error("Inactive enemy advanced")
	}
}

// TestPlaceFoodAvoidsSnake verifies food never lands on the body and a full board reports false
func TestPlaceFoodAvoidsSnake(t *testing.T) {
	g := grid.New(3, 2)
	rng := rand.New(rand.NewPCG(9, 10))
	snake := []grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}

	for i := 0; i < 50; i++ {
		c, ok := placeFood(g, rng, snake)
		if !ok || c != (grid.Cell{X: 0, Y: 1}) {
			t.Fatalf("Expected the single free cell (0,1), got %v ok=%v", c, ok)
		}
	}

	full := append(snake, grid.Cell{X: 0, Y: 1})
	if _, ok := placeFood(g, rng, full); ok {
		t.Error("Expected no placement on a full board")
	}
}
