package systems

import (
	"testing"

	"fogwalker-server/internal/domain"
)

func TestRevealAroundCircular(t *testing.T) {
	world := makeFlatWorld(11, 11)
	mask := domain.NewRevealMask(11, 11)

	center := domain.GridPoint{X: 5, Y: 5}
	revealed := RevealAround(world, mask, center, 3)

	if len(revealed) == 0 {
		t.Fatal("Expected some cells revealed")
	}

	// Круг: клетка на расстоянии ровно radius открыта, угол квадрата — нет
	if !mask.Revealed(5, 2) {
		t.Error("Cell at distance 3 along axis should be revealed")
	}
	if mask.Revealed(2, 2) {
		t.Error("Square corner (distance sqrt(18)) should NOT be revealed")
	}
	if mask.Revealed(8, 8) {
		t.Error("Square corner should NOT be revealed")
	}
}

func TestRevealAroundIdempotent(t *testing.T) {
	world := makeFlatWorld(10, 10)
	mask := domain.NewRevealMask(10, 10)
	center := domain.GridPoint{X: 4, Y: 4}

	first := RevealAround(world, mask, center, 2)
	second := RevealAround(world, mask, center, 2)

	if len(first) == 0 {
		t.Fatal("First call should reveal cells")
	}
	if len(second) != 0 {
		t.Errorf("Second identical call should reveal nothing, got %d", len(second))
	}
}

func TestRevealAroundMonotonicNoDuplicates(t *testing.T) {
	world := makeFlatWorld(20, 20)
	mask := domain.NewRevealMask(20, 20)

	seen := make(map[int]bool)
	// Двигаем центр и проверяем, что уже открытые индексы не возвращаются повторно
	for step := 0; step < 10; step++ {
		revealed := RevealAround(world, mask, domain.GridPoint{X: step, Y: 10}, 3)
		for _, idx := range revealed {
			if seen[idx] {
				t.Fatalf("Index %d reported as newly revealed twice", idx)
			}
			seen[idx] = true
		}
	}

	// Монотонность: все ранее открытые клетки остаются открытыми
	for idx := range seen {
		if !mask.Cells[idx] {
			t.Fatalf("Cell %d reverted to unrevealed", idx)
		}
	}
}

func TestRevealAroundClipsBounds(t *testing.T) {
	world := makeFlatWorld(5, 5)
	mask := domain.NewRevealMask(5, 5)

	revealed := RevealAround(world, mask, domain.GridPoint{X: 0, Y: 0}, 3)
	for _, idx := range revealed {
		if idx < 0 || idx >= 25 {
			t.Fatalf("Out-of-range index returned: %d", idx)
		}
	}
}
