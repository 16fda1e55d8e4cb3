package engine

import (
	"fogwalker-server/internal/domain"
	"fogwalker-server/internal/systems"
	"fogwalker-server/pkg/logger"
	"fogwalker-server/pkg/worldgen"

	"github.com/sirupsen/logrus"
)

// Session владеет одним сгенерированным миром и единственным агентом.
//
// Вся мутация состояния происходит в одной горутине (цикл GameService.run):
// ровно один логический писатель для RevealMask и навигационного состояния,
// поэтому блокировки не нужны. WorldData и BlockedMask после создания
// только читаются.
type Session struct {
	World   *domain.WorldData
	Reveal  *domain.RevealMask
	Blocked *domain.BlockedMask

	Cfg      Config
	WorldCfg domain.WorldConfig

	Agent domain.GridPoint
	Tick  int

	// Активная навигация. path[pathPos] — следующая клетка агента.
	path    domain.Path
	pathPos int
	goal    domain.GridPoint
	hasGoal bool
}

// NewSession генерирует мир, строит маску чащи и ставит агента на спавн.
// Ошибка конфигурации мира — фатальная ошибка конструирования.
func NewSession(cfg Config) (*Session, error) {
	worldCfg := domain.DefaultWorldConfig(uint32(cfg.Seed), cfg.Width, cfg.Height)

	world, err := worldgen.Generate(worldCfg)
	if err != nil {
		return nil, err
	}
	blocked := worldgen.BuildBlockedMask(world, worldCfg)

	s := &Session{
		World:    world,
		Reveal:   domain.NewRevealMask(cfg.Width, cfg.Height),
		Blocked:  blocked,
		Cfg:      cfg,
		WorldCfg: worldCfg,
	}

	s.Agent = worldgen.ResolveSpawn(world, blocked, cfg.SpawnOverride, cfg.MaxSlope, worldCfg.SeaLevel)

	// Стартовая область видимости вокруг точки спавна
	systems.RevealAround(world, s.Reveal, s.Agent, cfg.RevealRadius)

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"spawn":     s.Agent,
		"seed":      cfg.Seed,
	}).Info("Session ready")

	return s, nil
}

func (s *Session) pathOptions() systems.Options {
	return systems.Options{
		MaxSlope:      s.Cfg.MaxSlope,
		AllowDiagonal: s.Cfg.AllowDiagonal,
		Blocked:       s.Blocked,
	}
}

// Navigate прокладывает маршрут от агента к цели и делает его активным.
// Возвращает false, если пути нет или цель совпадает с текущей клеткой;
// в обоих случаях навигационное состояние сбрасывается.
func (s *Session) Navigate(goal domain.GridPoint) bool {
	path := systems.FindPath(s.World, s.Reveal, s.Agent, goal, s.pathOptions())
	if len(path) < 2 {
		s.clearNavigation()
		return false
	}

	s.path = path
	s.pathPos = 1 // path[0] — текущая клетка агента
	s.goal = goal
	s.hasGoal = true
	return true
}

// Step продвигает симуляцию на один тик: агент делает один шаг по маршруту,
// туман открывается вокруг новой клетки. Возвращает индексы только что
// открытых клеток и признак, что агент сдвинулся.
//
// Если шаг открыл новые клетки, а цель еще впереди — маршрут
// перепрокладывается: открытое может дать короткий срез, а цель на краю
// тумана могла оказаться недостижимой. Неудачный репас сбрасывает цель.
func (s *Session) Step() ([]int, bool) {
	s.Tick++

	if !s.hasGoal || s.pathPos >= len(s.path) {
		return nil, false
	}

	s.Agent = s.path[s.pathPos]
	s.pathPos++

	revealed := systems.RevealAround(s.World, s.Reveal, s.Agent, s.Cfg.RevealRadius)

	if s.Agent == s.goal {
		s.clearNavigation()
		return revealed, true
	}

	if len(revealed) > 0 {
		if !s.Navigate(s.goal) {
			logger.Log.WithFields(logrus.Fields{
				"component": "session",
				"goal":      s.goal,
			}).Debug("Repath failed, navigation cleared")
		}
	}

	return revealed, true
}

// HasGoal — есть ли активная навигация.
func (s *Session) HasGoal() bool {
	return s.hasGoal
}

// Goal — текущая цель (валидна только при HasGoal).
func (s *Session) Goal() domain.GridPoint {
	return s.goal
}

// RemainingPath — остаток активного маршрута, начиная с текущей клетки агента.
func (s *Session) RemainingPath() domain.Path {
	if !s.hasGoal {
		return nil
	}
	// pathPos-1 — клетка, на которой агент стоит сейчас
	return s.path[s.pathPos-1:]
}

func (s *Session) clearNavigation() {
	s.path = nil
	s.pathPos = 0
	s.goal = domain.GridPoint{}
	s.hasGoal = false
}
