package engine

import (
	"encoding/json"
	"time"

	"fogwalker-server/internal/domain"
	"fogwalker-server/internal/network"
	"fogwalker-server/pkg/api"
	"fogwalker-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// GameService принимает команды клиентов, крутит тики сессии и
// транслирует обновления в Broadcaster. Все обращения к Session
// происходят внутри run — это и есть единственный логический поток
// исполнения симуляции.
type GameService struct {
	Session *Session
	Hub     *network.Broadcaster

	CommandChan chan api.ClientCommand
	stopChan    chan struct{}
}

// NewService генерирует мир и готовит сервис к запуску.
func NewService(cfg Config) (*GameService, error) {
	session, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}

	return &GameService{
		Session:     session,
		Hub:         network.NewBroadcaster(),
		CommandChan: make(chan api.ClientCommand, 100),
		stopChan:    make(chan struct{}),
	}, nil
}

// Start запускает цикл симуляции.
func (s *GameService) Start() {
	go s.run()
}

// Stop останавливает цикл симуляции.
func (s *GameService) Stop() {
	close(s.stopChan)
}

// ProcessCommand передает команду в цикл симуляции.
func (s *GameService) ProcessCommand(cmd api.ClientCommand) {
	select {
	case s.CommandChan <- cmd:
	default:
		logger.Log.WithField("action", cmd.Action).Warn("Command queue full, command dropped")
	}
}

func (s *GameService) run() {
	interval := time.Second / time.Duration(s.Session.Cfg.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"tick_rate": s.Session.Cfg.TickRate,
	}).Info("Simulation loop started")

	for {
		select {
		case <-s.stopChan:
			logger.Log.Info("Simulation loop stopped")
			return

		case cmd := <-s.CommandChan:
			s.handleCommand(cmd)

		case <-ticker.C:
			revealed, moved := s.Session.Step()
			if moved {
				s.Hub.Broadcast(s.buildUpdate(revealed, false))
			}
		}
	}
}

func (s *GameService) handleCommand(cmd api.ClientCommand) {
	switch cmd.Action {
	case api.ActionInit:
		s.Hub.SendTo(cmd.ClientID, s.buildInit())

	case api.ActionNavigate:
		var p api.NavigatePayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			logger.Log.WithError(err).Warn("Malformed NAVIGATE payload")
			return
		}
		if err := p.Validate(); err != nil {
			logger.Log.WithError(err).Warn("Invalid NAVIGATE payload")
			return
		}

		ok := s.Session.Navigate(domain.GridPoint{X: p.X, Y: p.Y})
		// "Пути нет" — ожидаемый частый исход: клиенту уходит noPath,
		// чтобы он сбросил маркер цели, ошибкой это не считается
		s.Hub.Broadcast(s.buildUpdate(nil, !ok))

	default:
		logger.Log.WithField("action", cmd.Action).Warn("Unknown client action")
	}
}

// buildInit собирает полный снимок мира для нового подключения.
func (s *GameService) buildInit() api.ServerResponse {
	world := s.Session.World

	objects := make([]api.ObjectView, 0, len(world.Objects))
	for _, obj := range world.Objects {
		objects = append(objects, api.ObjectView{X: obj.X, Y: obj.Y, Kind: obj.Kind.String()})
	}

	ground := make([]uint8, len(world.Ground))
	for i, g := range world.Ground {
		ground[i] = uint8(g)
	}

	agent := api.PointView{X: s.Session.Agent.X, Y: s.Session.Agent.Y}

	return api.ServerResponse{
		Type: api.ActionInit,
		Tick: s.Session.Tick,
		Grid: &api.GridMeta{Width: world.Width, Height: world.Height},
		World: &api.WorldView{
			Heightmap: world.Heightmap,
			Ground:    ground,
			Objects:   objects,
			Blocked:   s.Session.Blocked.BlockedIndices(),
			Revealed:  s.Session.Reveal.RevealedIndices(),
		},
		Agent: &agent,
	}
}

// buildUpdate собирает инкрементальное обновление после шага или навигации.
func (s *GameService) buildUpdate(revealed []int, noPath bool) api.ServerResponse {
	agent := api.PointView{X: s.Session.Agent.X, Y: s.Session.Agent.Y}

	var path []api.PointView
	for _, p := range s.Session.RemainingPath() {
		path = append(path, api.PointView{X: p.X, Y: p.Y})
	}

	return api.ServerResponse{
		Type:     api.ActionUpdate,
		Tick:     s.Session.Tick,
		Agent:    &agent,
		Revealed: revealed,
		Path:     path,
		NoPath:   noPath,
	}
}
