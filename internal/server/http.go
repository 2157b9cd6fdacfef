package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"hexcrawl-server/internal/agent"
	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/engine"
	"hexcrawl-server/internal/hex"
	"hexcrawl-server/internal/network"
	"hexcrawl-server/internal/version"
	"hexcrawl-server/pkg/api"
	"hexcrawl-server/pkg/dungeon"
	"hexcrawl-server/pkg/logger"
	"hexcrawl-server/pkg/utils"
)

var raceByName = map[string]domain.Race{
	"human": domain.RaceHuman,
	"elf":   domain.RaceElf,
	"dwarf": domain.RaceDwarf,
}

// Server принимает подключения и поднимает по одному прогону на
// игрока. Одновременно идет не более одного прогона; наблюдатели
// подключаются отдельно и получают трансляцию снимков игрока.
type Server struct {
	Cfg  engine.Config
	Gen  engine.Generator
	Hub  *network.Broadcaster
	Port string

	mu   sync.Mutex
	busy bool

	// inst - текущий прогон, только для debug-эндпоинтов.
	inst *engine.Instance
}

func New(cfg engine.Config, gen engine.Generator, port string) *Server {
	return &Server{
		Cfg:  cfg,
		Gen:  gen,
		Hub:  network.NewBroadcaster(),
		Port: port,
	}
}

// Run запускает HTTP сервер. Блокируется до остановки.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/observe", enableCORS(s.handleObserve))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s)
	debugHandler.RegisterRoutes(mux)

	srv := &http.Server{Addr: ":" + s.Port, Handler: mux}
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Log.WithError(err).Warn("http shutdown failed")
		}
	}()

	logger.Log.Infof("Hexcrawl server running on :%s", s.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next(w, r)
	}
}

// handleWS обрабатывает подключение игрока и ведет весь его прогон.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		http.Error(w, "game in progress", http.StatusConflict)
		return
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.inst = nil
		s.mu.Unlock()
	}()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("websocket upgrade failed")
		return
	}

	client := NewClient(conn)
	go client.writePump()
	go client.readPump()
	defer close(client.Send)

	// 1. HANDSHAKE (LOGIN)
	loginCmd, ok := <-client.Commands
	if !ok || loginCmd.Action != "LOGIN" {
		logger.Log.Warn("Handshake failed")
		return
	}
	race := domain.RaceHuman
	if len(loginCmd.Payload) > 0 {
		var p api.LoginPayload
		if err := json.Unmarshal(loginCmd.Payload, &p); err == nil {
			if r, ok := raceByName[p.Race]; ok {
				race = r
			}
		}
	}

	// 2. НОВЫЙ ПРОГОН
	inst, err := engine.NewInstance(s.Cfg, s.Gen)
	if err != nil {
		logger.Log.WithError(err).Error("failed to build level")
		return
	}
	s.mu.Lock()
	s.inst = inst
	s.mu.Unlock()

	player := dungeon.CreatePlayer(race, hex.NewPosition(hex.Origin, hex.East))
	playerID, err := inst.SpawnPlayer(player)
	if err != nil {
		logger.Log.WithError(err).Error("failed to spawn player")
		return
	}

	sessionID := utils.GenerateID()
	logger.Log.WithFields(logrus.Fields{
		"session": sessionID,
		"race":    player.Race.Description(),
		"seed":    s.Cfg.Seed,
	}).Info("Client logged in, run started")

	// 3. ПРОВОДКА: сессия игрока, бот за монстров, драйвер тиков.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	playerProvider := engine.NewProvider()
	aiProvider := engine.NewProvider()

	session := NewSession(inst, client, s.Hub, playerProvider)
	go session.Serve(ctx)

	bot := agent.NewBot(aiProvider, utils.StringToSeed(sessionID))
	go bot.Run(ctx)

	driver := engine.NewDriver(inst, playerProvider, aiProvider)
	runErr := driver.Run(ctx)
	cancel()

	// 4. ФИНАЛ: мертвому игроку отсылается последний снимок.
	if runErr == nil && player.IsDead() {
		final := inst.BuildStateFor(playerID, player)
		select {
		case client.Send <- *final:
		default:
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"session": sessionID,
		"turns":   inst.Loc.Turn,
		"level":   inst.Loc.Level,
	}).Info("Run finished")
	if runErr != nil && runErr != context.Canceled {
		logger.Log.WithError(runErr).Warn("Run aborted")
	}
}

// handleObserve подключает наблюдателя: он получает трансляцию
// снимков текущего прогона, команды от него игнорируются.
func (s *Server) handleObserve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("websocket upgrade failed")
		return
	}

	name := "observer_" + utils.GenerateID()
	updates := s.Hub.Register(name)
	defer s.Hub.Unregister(name)

	client := NewClient(conn)
	go client.writePump()
	go client.readPump()
	defer close(client.Send)

	for {
		select {
		case msg, ok := <-updates:
			if !ok {
				return
			}
			// Отстающий наблюдатель теряет кадры, но не стопорит рассылку.
			select {
			case client.Send <- msg:
			default:
			}
		case _, ok := <-client.Commands:
			if !ok {
				return
			}
			// Наблюдатель не играет.
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
