package server

import (
	"encoding/json"
	"net/http"

	"hexcrawl-server/internal/domain"
)

// DebugHandler предоставляет "божественный" доступ к состоянию текущего
// прогона. Только для локальной отладки: туман войны не применяется.
type DebugHandler struct {
	server *Server
}

func NewDebugHandler(s *Server) *DebugHandler {
	return &DebugHandler{server: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/actors", h.handleActors)
}

// /debug/state - сводка текущего прогона
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	h.server.mu.Lock()
	inst := h.server.inst
	h.server.mu.Unlock()

	if inst == nil {
		http.Error(w, "no run in progress", http.StatusNotFound)
		return
	}

	type StateSummary struct {
		Turn       uint64 `json:"turn"`
		Level      int    `json:"level"`
		Tiles      int    `json:"tiles"`
		ActorCount int    `json:"actor_count"`
		ItemCount  int    `json:"item_count"`
	}

	writeJSON(w, StateSummary{
		Turn:       inst.Loc.Turn,
		Level:      inst.Loc.Level,
		Tiles:      inst.Loc.Map.Len(),
		ActorCount: len(inst.Loc.ActorsByID),
		ItemCount:  len(inst.Loc.Items),
	})
}

// /debug/actors - дамп всех акторов со скрытыми параметрами
func (h *DebugHandler) handleActors(w http.ResponseWriter, r *http.Request) {
	h.server.mu.Lock()
	inst := h.server.inst
	h.server.mu.Unlock()

	if inst == nil {
		http.Error(w, "no run in progress", http.StatusNotFound)
		return
	}

	type ActorDump struct {
		ID    domain.ActorID `json:"id"`
		Actor *domain.Actor  `json:"actor"`
	}

	var dump []ActorDump
	for _, id := range inst.Loc.ActorIDs() {
		dump = append(dump, ActorDump{ID: id, Actor: inst.Loc.ActorsByID[id]})
	}
	writeJSON(w, dump)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
