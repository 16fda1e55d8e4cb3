package domain

import "testing"

func TestWorldAccessorsOutOfBounds(t *testing.T) {
	w := NewWorldData(4, 3)
	w.Heightmap[w.Index(1, 1)] = 0.5
	w.Ground[w.Index(1, 1)] = GroundSoil

	// Определенные дефолты за границами: высота 0, поверхность вода
	if h := w.HeightAt(-1, 0); h != 0 {
		t.Errorf("OOB height should be 0, got %v", h)
	}
	if h := w.HeightAt(4, 0); h != 0 {
		t.Errorf("OOB height should be 0, got %v", h)
	}
	if g := w.GroundAt(0, -1); g != GroundWater {
		t.Errorf("OOB ground should be Water, got %v", g)
	}
	if g := w.GroundAt(0, 3); g != GroundWater {
		t.Errorf("OOB ground should be Water, got %v", g)
	}
	if w.Occupied(100, 100) {
		t.Error("OOB cell should not be occupied")
	}

	if h := w.HeightAt(1, 1); h != 0.5 {
		t.Errorf("Expected height 0.5, got %v", h)
	}
}

func TestSlopeAt(t *testing.T) {
	w := NewWorldData(3, 1)
	w.Heightmap[0] = 0.1
	w.Heightmap[1] = 0.5
	w.Heightmap[2] = 0.4

	// Соседи за границами исключаются, а не читаются как 0
	if s := w.SlopeAt(0, 0); s != 0.4 {
		t.Errorf("Expected slope 0.4 at edge cell, got %v", s)
	}
	if s := w.SlopeAt(1, 0); s != 0.4 {
		t.Errorf("Expected slope 0.4 at middle cell, got %v", s)
	}

	// Вырожденная сетка 1x1: соседей нет вообще
	tiny := NewWorldData(1, 1)
	tiny.Heightmap[0] = 0.9
	if s := tiny.SlopeAt(0, 0); s != 0 {
		t.Errorf("Expected slope 0 on 1x1 grid, got %v", s)
	}
}

func TestPlaceObjectOccupancy(t *testing.T) {
	w := NewWorldData(5, 5)
	w.PlaceObject(2, 3, ObjectTree)

	if !w.Occupied(2, 3) {
		t.Error("Cell should be occupied after PlaceObject")
	}
	if w.Occupied(3, 2) {
		t.Error("Other cell should not be occupied")
	}
	if len(w.Objects) != 1 || w.Objects[0].Kind != ObjectTree {
		t.Errorf("Unexpected objects list: %+v", w.Objects)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultWorldConfig(1, 10, 10)
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}

	bad := cfg
	bad.Width = 0
	if err := bad.Validate(); err == nil {
		t.Error("Zero width should be rejected")
	}

	bad = cfg
	bad.SeaLevel = 0.8
	bad.MountainHeight = 0.5
	if err := bad.Validate(); err == nil {
		t.Error("seaLevel >= mountainHeight should be rejected")
	}
}

func TestRevealMaskBounds(t *testing.T) {
	m := NewRevealMask(4, 4)
	m.Cells[m.Index(1, 2)] = true

	if !m.Revealed(1, 2) {
		t.Error("Expected cell (1,2) revealed")
	}
	if m.Revealed(-1, 2) || m.Revealed(1, 4) {
		t.Error("OOB cells must read as unrevealed")
	}
}

func TestBlockedMaskNil(t *testing.T) {
	var m *BlockedMask
	if m.Blocked(0, 0) {
		t.Error("Nil mask should block nothing")
	}
	if m.BlockedIndices() != nil {
		t.Error("Nil mask should have no blocked indices")
	}
}
