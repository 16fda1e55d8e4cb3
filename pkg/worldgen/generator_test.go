package worldgen

import (
	"testing"

	"fogwalker-server/internal/domain"
)

func testConfig() domain.WorldConfig {
	return domain.DefaultWorldConfig(1337, 64, 48)
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := testConfig()

	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(a.Heightmap) != len(b.Heightmap) {
		t.Fatal("Heightmap lengths differ")
	}
	for i := range a.Heightmap {
		if a.Heightmap[i] != b.Heightmap[i] {
			t.Fatalf("Heightmaps differ at index %d", i)
		}
		if a.Ground[i] != b.Ground[i] {
			t.Fatalf("Ground arrays differ at index %d", i)
		}
	}
	if len(a.Objects) != len(b.Objects) {
		t.Fatalf("Object counts differ: %d vs %d", len(a.Objects), len(b.Objects))
	}
	for i := range a.Objects {
		if a.Objects[i] != b.Objects[i] {
			t.Fatalf("Objects differ at index %d: %+v vs %+v", i, a.Objects[i], b.Objects[i])
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	cfgA := testConfig()
	cfgB := testConfig()
	cfgB.Seed = 7331

	a, _ := Generate(cfgA)
	b, _ := Generate(cfgB)

	same := 0
	for i := range a.Heightmap {
		if a.Heightmap[i] == b.Heightmap[i] {
			same++
		}
	}
	if same == len(a.Heightmap) {
		t.Error("Different seeds produced identical heightmaps")
	}
}

func TestGenerateInvariants(t *testing.T) {
	cfg := testConfig()
	world, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Высоты в [0,1]
	for i, h := range world.Heightmap {
		if h < 0 || h > 1 {
			t.Fatalf("Height out of [0,1] at %d: %v", i, h)
		}
	}

	// Классификация согласована с порогами
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			h := world.HeightAt(x, y)
			g := world.GroundAt(x, y)
			if h < cfg.SeaLevel && g != domain.GroundWater {
				t.Fatalf("Cell (%d,%d) below sea level but ground %v", x, y, g)
			}
			if g == domain.GroundSand && h >= cfg.SeaLevel+cfg.SandHeight {
				t.Fatalf("Sand at (%d,%d) above the sand band (h=%v)", x, y, h)
			}
		}
	}

	// Объекты в границах, не на воде, в порядке row-major скана
	prev := -1
	for _, obj := range world.Objects {
		if !world.InBounds(obj.X, obj.Y) {
			t.Fatalf("Object out of bounds: %+v", obj)
		}
		if world.GroundAt(obj.X, obj.Y) == domain.GroundWater {
			t.Fatalf("Object on water: %+v", obj)
		}
		if !world.Occupied(obj.X, obj.Y) {
			t.Fatalf("Object cell not marked occupied: %+v", obj)
		}
		idx := world.Index(obj.X, obj.Y)
		if idx <= prev {
			t.Fatalf("Objects out of row-major order at %+v", obj)
		}
		prev = idx

		switch obj.Kind {
		case domain.ObjectTree:
			if world.GroundAt(obj.X, obj.Y) != domain.GroundSoil {
				t.Fatalf("Tree not on soil: %+v", obj)
			}
		case domain.ObjectRock:
			if world.GroundAt(obj.X, obj.Y) != domain.GroundRock {
				t.Fatalf("Rock object not on rock ground: %+v", obj)
			}
		}
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.SeaLevel = 0.9
	cfg.MountainHeight = 0.5

	if _, err := Generate(cfg); err == nil {
		t.Error("Expected config validation error")
	}

	cfg = testConfig()
	cfg.Height = -1
	if _, err := Generate(cfg); err == nil {
		t.Error("Expected dimension validation error")
	}
}

func TestBuildBlockedMaskDeterminism(t *testing.T) {
	cfg := testConfig()
	world, _ := Generate(cfg)

	a := BuildBlockedMask(world, cfg)
	b := BuildBlockedMask(world, cfg)

	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("Blocked masks differ at index %d", i)
		}
	}

	// Чаща бывает только на почве
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if a.Blocked(x, y) && world.GroundAt(x, y) != domain.GroundSoil {
				t.Fatalf("Blocked cell (%d,%d) is not soil", x, y)
			}
		}
	}
}
