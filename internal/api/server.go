// Package api provides the HTTP API for running lives. Every life is
// held in an in-memory registry keyed by ID; snapshots only leave it
// through the save-slot store.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/talgya/mini-life/internal/life"
	"github.com/talgya/mini-life/internal/persistence"
	"github.com/talgya/mini-life/internal/person"
)

// Server serves lives over HTTP.
type Server struct {
	Sim  *life.Sim
	DB   *persistence.DB
	Port int

	mu    sync.RWMutex
	lives map[string]*life.Game
}

// NewServer builds a Server around a simulator and save store.
func NewServer(sim *life.Sim, db *persistence.DB, port int) *Server {
	return &Server{
		Sim:   sim,
		DB:    db,
		Port:  port,
		lives: make(map[string]*life.Game),
	}
}

// Router assembles the chi route tree.
func (s *Server) Router() http.Handler {
	chatLimiter := NewRateLimiter(120, time.Minute)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/{name}", s.handleCatalog)

		r.Get("/saves", s.handleListSaves)
		r.Post("/saves/{slot}/load", s.handleLoadSave)
		r.Delete("/saves/{slot}", s.handleDeleteSave)

		r.Post("/lives", s.handleCreateLife)
		r.Get("/lives", s.handleListLives)

		r.Route("/lives/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetLife)
			r.Delete("/", s.handleDeleteLife)

			r.Post("/age-up", s.handleAgeUp)
			r.Post("/choice", s.handleChoice)
			r.Post("/chat", RateLimitMiddleware(chatLimiter, s.handleChat))
			r.Post("/interact", s.handleInteract)
			r.Post("/gesture", s.handleGesture)
			r.Post("/activity", s.indexed(s.Sim.DoActivity))

			r.Post("/job/apply", s.indexed(s.Sim.ApplyForJob))
			r.Post("/job/quit", s.mutate(s.Sim.QuitJob))
			r.Post("/job/retire", s.mutate(s.Sim.Retire))
			r.Post("/job/schmooze", s.mutate(s.Sim.Schmooze))
			r.Post("/job/promotion", s.mutate(s.Sim.AskPromotion))
			r.Post("/job/task", s.handleWorkTask)

			r.Post("/school/class", s.handleAttendClass)
			r.Post("/school/club", s.handleJoinClub)
			r.Post("/school/friend", s.mutate(s.Sim.MakeFriend))
			r.Post("/education/enroll", s.handleEnroll)

			r.Post("/crime", s.indexed(s.Sim.CommitCrime))
			r.Post("/assets/buy", s.handleBuyAsset)
			r.Post("/assets/sell", s.handleSellAsset)
			r.Post("/housing", s.indexed(s.Sim.ChangeHousing))
			r.Post("/expenses", s.handleExpenses)

			r.Post("/business/start", s.indexed(s.Sim.StartBusiness))
			r.Post("/business/close", s.mutate(s.Sim.CloseBusiness))
			r.Post("/business/hire", s.mutate(s.Sim.HireWorker))
			r.Post("/business/fire", s.mutate(s.Sim.FireWorker))

			r.Post("/investments", s.handleInvest)
			r.Post("/investments/sell", s.handleSellInvestment)

			r.Post("/date", s.mutate(s.Sim.Date))
			r.Post("/marry", s.mutate(s.Sim.Marry))
			r.Post("/breakup", s.handleBreakup)
			r.Post("/child", s.mutate(s.Sim.HaveChild))

			r.Post("/saves/{slot}", s.handleSaveLife)
		})
	})
	return r
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)
	go func() {
		if err := http.ListenAndServe(addr, s.Router()); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) get(id string) (*life.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.lives[id]
	return g, ok
}

func (s *Server) put(g *life.Game) {
	s.mu.Lock()
	s.lives[g.ID] = g
	s.mu.Unlock()
}

// ---- request plumbing ----

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, life.ErrNotFound),
		errors.Is(err, persistence.ErrSlotEmpty):
		status = http.StatusNotFound
	case errors.Is(err, life.ErrRequirements):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, life.ErrDeadCharacter):
		status = http.StatusConflict
	case errors.Is(err, persistence.ErrBadSlot):
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// withLife resolves the {id} route param to a live snapshot.
func (s *Server) withLife(w http.ResponseWriter, r *http.Request) (*life.Game, bool) {
	g, ok := s.get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, life.ErrNotFound)
		return nil, false
	}
	return g, true
}

// mutate adapts the no-argument simulator operations to handlers.
func (s *Server) mutate(op func(*life.Game) (*life.Game, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := s.withLife(w, r)
		if !ok {
			return
		}
		next, err := op(g)
		if err != nil {
			writeError(w, err)
			return
		}
		s.put(next)
		writeJSON(w, next)
	}
}

// indexed adapts the catalog-index operations to handlers.
func (s *Server) indexed(op func(*life.Game, int) (*life.Game, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := s.withLife(w, r)
		if !ok {
			return
		}
		var req struct {
			Index int `json:"index"`
		}
		if err := decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		next, err := op(g, req.Index)
		if err != nil {
			writeError(w, err)
			return
		}
		s.put(next)
		writeJSON(w, next)
	}
}

// ---- lives ----

// LifeSummary is the listing row for a life.
type LifeSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Alive bool   `json:"alive"`
	Money int    `json:"money"`
}

func (s *Server) handleCreateLife(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Gender    string `json:"gender"`
		Country   string `json:"country"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	gender := person.Male
	if req.Gender == "female" {
		gender = person.Female
	}
	g := s.Sim.NewGame(req.FirstName, req.LastName, gender, req.Country)
	s.put(g)
	slog.Info("life created", "id", g.ID, "name", g.FirstName+" "+g.LastName)
	writeJSON(w, g)
}

func (s *Server) handleListLives(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	summaries := make([]LifeSummary, 0, len(s.lives))
	for _, g := range s.lives {
		summaries = append(summaries, LifeSummary{
			ID: g.ID, Name: g.FirstName + " " + g.LastName,
			Age: g.Age, Alive: g.Alive, Money: g.Money,
		})
	}
	s.mu.RUnlock()
	writeJSON(w, summaries)
}

func (s *Server) handleGetLife(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	writeJSON(w, g)
}

func (s *Server) handleDeleteLife(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	_, ok := s.lives[id]
	delete(s.lives, id)
	s.mu.Unlock()
	if !ok {
		writeError(w, life.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAgeUp(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	next, err := s.Sim.AgeUp(g)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

func (s *Server) handleChoice(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		Choice int `json:"choice"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.Choose(g, req.Choice)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

// ---- social ----

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		ContactID string `json:"contact_id"`
		Message   string `json:"message"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, reply, err := s.Sim.Chat(g, req.ContactID, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, map[string]any{"reply": reply, "life": next})
}

func (s *Server) handleInteract(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		ContactID string `json:"contact_id"`
		Action    string `json:"action"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, res, err := s.Sim.Interact(g, req.ContactID, req.Action)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, map[string]any{"result": res, "life": next})
}

func (s *Server) handleGesture(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		ContactID string `json:"contact_id"`
		Action    string `json:"action"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.Gesture(g, req.ContactID, req.Action)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

func (s *Server) handleBreakup(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		ContactID string `json:"contact_id"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.Breakup(g, req.ContactID)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

// ---- remaining body-shaped operations ----

func (s *Server) handleWorkTask(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		Score int `json:"score"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.WorkTask(g, req.Score)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

func (s *Server) handleAttendClass(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		Subject string `json:"subject"`
		Score   int    `json:"score"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.AttendClass(g, req.Subject, req.Score)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

func (s *Server) handleJoinClub(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.JoinClub(g, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

func (s *Server) handleEnroll(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		Path string `json:"path"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.Enroll(g, req.Path)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

func (s *Server) handleBuyAsset(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		Category string `json:"category"`
		Index    int    `json:"index"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.BuyAsset(g, req.Category, req.Index)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

func (s *Server) handleSellAsset(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		AssetID string `json:"asset_id"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.SellAsset(g, req.AssetID)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		Category string `json:"category"`
		Tier     int    `json:"tier"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.SetExpenseTier(g, req.Category, life.ExpenseTier(req.Tier))
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

func (s *Server) handleInvest(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		Index  int `json:"index"`
		Amount int `json:"amount"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.Invest(g, req.Index, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

func (s *Server) handleSellInvestment(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	var req struct {
		InvestmentID string `json:"investment_id"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	next, err := s.Sim.SellInvestment(g, req.InvestmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(next)
	writeJSON(w, next)
}

// ---- saves ----

func slotParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "slot"))
}

func (s *Server) handleSaveLife(w http.ResponseWriter, r *http.Request) {
	g, ok := s.withLife(w, r)
	if !ok {
		return
	}
	slot, err := slotParam(r)
	if err != nil {
		http.Error(w, "invalid slot", http.StatusBadRequest)
		return
	}
	if err := s.DB.Save(slot, g); err != nil {
		writeError(w, err)
		return
	}
	s.rememberSlot(slot)
	slog.Info("life saved", "id", g.ID, "slot", slot)
	writeJSON(w, map[string]any{"saved": true, "slot": slot})
}

// rememberSlot records the most recently touched slot so clients can
// offer a "continue" entry.
func (s *Server) rememberSlot(slot int) {
	if err := s.DB.SaveMeta("last_slot", strconv.Itoa(slot)); err != nil {
		slog.Warn("failed to record last slot", "error", err)
	}
}

func (s *Server) lastSlot() int {
	v, err := s.DB.GetMeta("last_slot")
	if err != nil {
		return -1
	}
	slot, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return slot
}

func (s *Server) handleListSaves(w http.ResponseWriter, _ *http.Request) {
	slots, err := s.DB.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"slots": slots, "last_slot": s.lastSlot()})
}

func (s *Server) handleLoadSave(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		http.Error(w, "invalid slot", http.StatusBadRequest)
		return
	}
	g, err := s.DB.Load(slot)
	if err != nil {
		writeError(w, err)
		return
	}
	s.put(g)
	s.rememberSlot(slot)
	slog.Info("life loaded", "id", g.ID, "slot", slot)
	writeJSON(w, g)
}

func (s *Server) handleDeleteSave(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		http.Error(w, "invalid slot", http.StatusBadRequest)
		return
	}
	if err := s.DB.Delete(slot); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- catalogs ----

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "name") {
	case "jobs":
		writeJSON(w, life.Jobs)
	case "activities":
		writeJSON(w, life.Activities)
	case "crimes":
		writeJSON(w, life.Crimes)
	case "education":
		writeJSON(w, life.EducationPaths)
	case "clubs":
		writeJSON(w, life.SchoolClubs)
	case "businesses":
		writeJSON(w, life.BusinessTypes)
	case "investments":
		writeJSON(w, life.InvestmentTypes)
	case "vehicles":
		writeJSON(w, life.Vehicles)
	case "properties":
		writeJSON(w, life.Properties)
	case "rentals":
		writeJSON(w, life.Rentals)
	case "countries":
		writeJSON(w, person.Countries)
	default:
		http.Error(w, "unknown catalog", http.StatusNotFound)
	}
}
