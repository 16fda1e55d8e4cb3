package engine

import (
	"os"
	"testing"

	"fogwalker-server/internal/domain"
	"fogwalker-server/internal/systems"
	"fogwalker-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// makeTestSession собирает сессию поверх синтетического плоского мира,
// минуя генератор: тестам движка нужна управляемая карта, а не шум.
func makeTestSession(w, h int) *Session {
	world := domain.NewWorldData(w, h)
	for i := range world.Ground {
		world.Ground[i] = domain.GroundSoil
		world.Heightmap[i] = 0.5
	}
	return &Session{
		World:  world,
		Reveal: domain.NewRevealMask(w, h),
		Cfg: Config{
			TickRate:      8,
			RevealRadius:  2,
			MaxSlope:      1.0,
			AllowDiagonal: false,
		},
	}
}

func revealWorld(s *Session) {
	for i := range s.Reveal.Cells {
		s.Reveal.Cells[i] = true
	}
}

func TestSessionNavigateAndArrive(t *testing.T) {
	s := makeTestSession(7, 1)
	revealWorld(s)
	s.Agent = domain.GridPoint{X: 0, Y: 0}

	goal := domain.GridPoint{X: 5, Y: 0}
	if !s.Navigate(goal) {
		t.Fatal("Expected navigation to succeed")
	}
	if !s.HasGoal() || s.Goal() != goal {
		t.Fatal("Goal not set after Navigate")
	}

	moves := 0
	for s.HasGoal() {
		if _, moved := s.Step(); moved {
			moves++
		}
		if moves > 10 {
			t.Fatal("Agent never arrived")
		}
	}

	if s.Agent != goal {
		t.Errorf("Agent at %+v, expected %+v", s.Agent, goal)
	}
	if moves != 5 {
		t.Errorf("Expected 5 steps, got %d", moves)
	}
	if s.RemainingPath() != nil {
		t.Error("Remaining path should be cleared after arrival")
	}
}

func TestSessionNavigateNoPath(t *testing.T) {
	s := makeTestSession(5, 1)
	revealWorld(s)
	s.Agent = domain.GridPoint{X: 0, Y: 0}
	s.World.Ground[s.World.Index(2, 0)] = domain.GroundWater

	if s.Navigate(domain.GridPoint{X: 4, Y: 0}) {
		t.Fatal("Expected navigation to fail across water on a single row")
	}
	if s.HasGoal() {
		t.Error("Failed navigation must clear the pending goal")
	}

	// Шаг без цели не двигает агента
	if _, moved := s.Step(); moved {
		t.Error("Step without a goal should not move the agent")
	}
}

func TestSessionNavigateToOwnCell(t *testing.T) {
	s := makeTestSession(3, 3)
	revealWorld(s)
	s.Agent = domain.GridPoint{X: 1, Y: 1}

	// Маршрут длины 1 (уже на месте) трактуется как отсутствие навигации
	if s.Navigate(s.Agent) {
		t.Error("Navigating to the current cell should report false")
	}
	if s.HasGoal() {
		t.Error("Goal must stay clear")
	}
}

func TestSessionRepathOnReveal(t *testing.T) {
	// Агент идет сквозь туман: каждый шаг открывает клетки и провоцирует
	// репас. Цель и коридор к ней открыты заранее, маршрут должен
	// оставаться валидным, цель — не теряться до прибытия.
	s := makeTestSession(12, 5)
	s.Agent = domain.GridPoint{X: 0, Y: 2}

	// Открываем коридор до цели и стартовую область
	for x := 0; x < 12; x++ {
		s.Reveal.Cells[s.Reveal.Index(x, 2)] = true
	}
	systems.RevealAround(s.World, s.Reveal, s.Agent, s.Cfg.RevealRadius)

	goal := domain.GridPoint{X: 11, Y: 2}
	if !s.Navigate(goal) {
		t.Fatal("Expected navigation along the revealed corridor")
	}

	steps := 0
	for s.HasGoal() {
		revealed, moved := s.Step()
		if !moved {
			t.Fatal("Agent stalled before reaching the goal")
		}
		steps++
		if steps > 30 {
			t.Fatal("Agent never arrived")
		}

		if s.HasGoal() {
			// После репаса остаток маршрута начинается с клетки агента
			// и по-прежнему ведет к той же цели
			rp := s.RemainingPath()
			if len(rp) == 0 || rp[0] != s.Agent {
				t.Fatalf("Remaining path must start at the agent, got %+v", rp)
			}
			if rp[len(rp)-1] != goal {
				t.Fatalf("Remaining path must end at the goal, got %+v", rp[len(rp)-1])
			}
			if s.Goal() != goal {
				t.Fatalf("Goal changed mid-walk: %+v", s.Goal())
			}
		}

		// Открытые индексы не должны повторяться (монотонность тумана)
		for _, idx := range revealed {
			if !s.Reveal.Cells[idx] {
				t.Fatalf("Returned index %d is not actually revealed", idx)
			}
		}
	}

	if s.Agent != goal {
		t.Errorf("Agent at %+v, expected %+v", s.Agent, goal)
	}
	if steps != 11 {
		t.Errorf("Expected 11 steps along the corridor, got %d", steps)
	}
}

func TestSessionStepTicks(t *testing.T) {
	s := makeTestSession(3, 3)
	before := s.Tick
	s.Step()
	s.Step()
	if s.Tick != before+2 {
		t.Errorf("Tick should advance on every Step, got %d", s.Tick)
	}
}
