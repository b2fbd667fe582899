// cmd/satya/server.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// AnalyzeRequest is the payload accepted by the analyze endpoint
type AnalyzeRequest struct {
	Type string `json:"type"`
	Text string `json:"text"`
	URL  string `json:"url"`
}

// AnalyzeResponse pairs a stored check id with its verdict
type AnalyzeResponse struct {
	ID     string   `json:"id,omitempty"`
	Result *Verdict `json:"result"`
}

// VerdictEvent is the compact message broadcast to websocket clients
type VerdictEvent struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	Confidence int       `json:"confidence"`
	RiskScore  int       `json:"risk_score"`
	Time       time.Time `json:"time"`
}

// APIServer exposes the verification API and the live verdict feed
type APIServer struct {
	checker   *Checker
	store     *CheckStore
	extractor *ClaimExtractor
	timeout   time.Duration
	srv       *http.Server

	wsMutex    sync.Mutex
	wsClients  map[*websocket.Conn]bool
	wsUpgrader websocket.Upgrader
}

// NewAPIServer wires the API router over the checker and stores
func NewAPIServer(cfg *Config, checker *Checker, store *CheckStore, extractor *ClaimExtractor) *APIServer {
	s := &APIServer{
		checker:   checker,
		store:     store,
		extractor: extractor,
		timeout:   cfg.AnalyzeTimeout(),
		wsClients: make(map[*websocket.Conn]bool),
	}

	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	api.HandleFunc("/results/{id}", s.handleResults).Methods("GET")
	api.HandleFunc("/history", s.handleHistory).Methods("GET")
	api.HandleFunc("/admin/stats", s.handleAdminStats).Methods("GET")
	api.HandleFunc("/ws", s.handleWebsocket)

	router.HandleFunc("/healthcheck", s.handleHealthCheck).Methods("GET")

	s.srv = &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}
	return s
}

// Start runs the HTTP server until Shutdown
func (s *APIServer) Start() error {
	Logger().Info("API server listening on %s", s.srv.Addr)
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the HTTP server gracefully
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.wsMutex.Lock()
	for conn := range s.wsClients {
		conn.Close()
	}
	s.wsClients = make(map[*websocket.Conn]bool)
	s.wsMutex.Unlock()

	return s.srv.Shutdown(ctx)
}

// handleAnalyze runs the verification pipeline for one claim
func (s *APIServer) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	IncrementCounter(MetricAnalyzeRequests)

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithHTTPError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	var claim string
	switch req.Type {
	case "text":
		claim = truncate(req.Text, maxClaimChars)
	case "url":
		if req.URL == "" {
			respondWithHTTPError(w, http.StatusBadRequest, "Missing url")
			return
		}
		claim = s.extractor.FromURL(ctx, req.URL)
	default:
		respondWithHTTPError(w, http.StatusBadRequest, "Invalid request: missing text or link")
		return
	}

	verdict := s.checker.GetVerdict(ctx, claim)
	IncrementCounter("verdict_" + verdict.Status)

	response := AnalyzeResponse{Result: verdict}
	if check, err := s.store.Save(req.Type, req.URL, claim, verdict); err != nil {
		// Persistence is outside the verdict contract; the caller
		// still gets a result
		Logger().Error("failed to store check: %v", err)
	} else {
		response.ID = check.ID
		s.broadcastVerdict(check.ID, verdict)
	}

	respondWithJSON(w, http.StatusOK, response)
}

// handleResults returns a stored verdict by check id
func (s *APIServer) handleResults(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	check, err := s.store.Get(id)
	if err != nil {
		Logger().Error("failed to load check %s: %v", id, err)
		respondWithHTTPError(w, http.StatusInternalServerError, "Failed to load result")
		return
	}
	if check == nil {
		respondWithHTTPError(w, http.StatusNotFound, "Result not found")
		return
	}

	respondWithJSON(w, http.StatusOK, check)
}

// handleHistory lists recent checks, newest first
func (s *APIServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = min(parsed, maxHistoryLimit)
		}
	}

	checks, err := s.store.Recent(limit)
	if err != nil {
		Logger().Error("failed to list history: %v", err)
		respondWithHTTPError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}
	if checks == nil {
		checks = []*Check{}
	}

	respondWithJSON(w, http.StatusOK, checks)
}

// handleAdminStats reports verdict totals by status
func (s *APIServer) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.StatusCounts()
	if err != nil {
		Logger().Error("failed to compute stats: %v", err)
		respondWithHTTPError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	respondWithJSON(w, http.StatusOK, counts)
}

// handleHealthCheck reports liveness, uptime, and counters
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"uptime":   Uptime().String(),
		"counters": CounterSnapshot(),
	})
}

// handleWebsocket upgrades a client onto the live verdict feed
func (s *APIServer) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		Logger().Warning("websocket upgrade failed: %v", err)
		return
	}

	s.wsMutex.Lock()
	s.wsClients[conn] = true
	s.wsMutex.Unlock()

	// Drain the connection; drop the client on first read error
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.wsMutex.Lock()
				delete(s.wsClients, conn)
				s.wsMutex.Unlock()
				conn.Close()
				return
			}
		}
	}()
}

// broadcastVerdict pushes a verdict event to all connected clients
func (s *APIServer) broadcastVerdict(id string, verdict *Verdict) {
	event := VerdictEvent{
		ID:         id,
		Status:     verdict.Status,
		Confidence: verdict.Confidence,
		RiskScore:  verdict.RiskScore,
		Time:       time.Now().UTC(),
	}

	s.wsMutex.Lock()
	defer s.wsMutex.Unlock()

	for conn := range s.wsClients {
		if err := conn.WriteJSON(event); err != nil {
			delete(s.wsClients, conn)
			conn.Close()
		}
	}
}
