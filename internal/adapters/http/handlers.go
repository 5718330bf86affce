package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/apply", h.handleApply)
	mux.HandleFunc("/api/auto", h.handleAuto)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func parsePeg(s string) (domain.Peg, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return domain.Left, true
	case "center", "c", "middle", "m":
		return domain.Center, true
	case "right", "r":
		return domain.Right, true
	}
	return 0, false
}

type wireMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func moveOut(mv domain.Move) wireMove {
	return wireMove{From: mv.From.String(), To: mv.To.String()}
}

// restore rebuilds a State from request towers, writing a 400 on bad
// input and reporting whether the caller should bail.
func restore(w http.ResponseWriter, pegs domain.Pegs) (*domain.State, bool) {
	st, err := domain.Restore(pegs, domain.Left)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid position: " + err.Error()})
		return nil, false
	}
	return st, true
}

// ---- New ----

type newReq struct {
	Disks    int   `json:"disks"`
	Seed     int64 `json:"seed,omitempty"`
	Scramble int   `json:"scramble,omitempty"`
}

type newResp struct {
	Pegs       domain.Pegs `json:"pegs"`
	Disks      int         `json:"disks,omitempty"`
	Seed       int64       `json:"seed,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Disks == 0 {
		req.Disks = 3
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	st, stats, err := h.UC.Scramble(r.Context(), seed, req.Disks, req.Scramble)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(newResp{
		Pegs:       st.Snapshot(),
		Disks:      st.Disks(),
		Seed:       seed,
		DurationMs: stats.Duration.Milliseconds(),
	})
}

// ---- Apply ----

type applyReq struct {
	Pegs domain.Pegs `json:"pegs"`
	From string      `json:"from"`
	To   string      `json:"to"`
}

type applyResp struct {
	Pegs    domain.Pegs `json:"pegs"`
	Outcome string      `json:"outcome,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req applyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(applyResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	from, okF := parsePeg(req.From)
	to, okT := parsePeg(req.To)
	if !okF || !okT {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(applyResp{Error: "from/to must name a peg: left, center or right"})
		return
	}
	st, ok := restore(w, req.Pegs)
	if !ok {
		return
	}
	out, err := h.UC.Apply(r.Context(), st, domain.Move{From: from, To: to})
	if err != nil {
		// Illegal move: the position is unchanged, return it as-is.
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(applyResp{Pegs: st.Snapshot(), Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(applyResp{Pegs: st.Snapshot(), Outcome: out.String()})
}

// ---- Auto ----

type autoReq struct {
	Pegs domain.Pegs `json:"pegs"`
}

type autoResp struct {
	Pegs       domain.Pegs `json:"pegs"`
	Move       *wireMove   `json:"move,omitempty"`
	Outcome    string      `json:"outcome,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleAuto(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req autoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(autoResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	st, ok := restore(w, req.Pegs)
	if !ok {
		return
	}
	mv, out, stats, err := h.UC.Step(r.Context(), st)
	if err != nil {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(autoResp{Pegs: st.Snapshot(), Error: err.Error()})
		return
	}
	wm := moveOut(mv)
	_ = json.NewEncoder(w).Encode(autoResp{
		Pegs:       st.Snapshot(),
		Move:       &wm,
		Outcome:    out.String(),
		Nodes:      stats.Nodes,
		DurationMs: stats.Duration.Milliseconds(),
	})
}

// ---- Solve ----

type solveReq struct {
	Pegs domain.Pegs `json:"pegs"`
}

type solveResp struct {
	Pegs       domain.Pegs `json:"pegs"`
	Moves      []wireMove  `json:"moves,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	st, ok := restore(w, req.Pegs)
	if !ok {
		return
	}
	moves, stats, err := h.UC.Solve(r.Context(), st)
	if err != nil {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(solveResp{Pegs: st.Snapshot(), Error: err.Error()})
		return
	}
	out := make([]wireMove, len(moves))
	for i, mv := range moves {
		out[i] = moveOut(mv)
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Pegs:       st.Snapshot(),
		Moves:      out,
		Nodes:      stats.Nodes,
		DurationMs: stats.Duration.Milliseconds(),
	})
}

// ---- Hint ----

type hintReq struct {
	Pegs domain.Pegs `json:"pegs"`
}

type hintResp struct {
	Found bool      `json:"found"`
	Move  *wireMove `json:"move,omitempty"`
	Error string    `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	st, ok := restore(w, req.Pegs)
	if !ok {
		return
	}
	mv, found, err := h.UC.Hint(r.Context(), st)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	if !found {
		_ = json.NewEncoder(w).Encode(hintResp{Found: false})
		return
	}
	wm := moveOut(mv)
	_ = json.NewEncoder(w).Encode(hintResp{Found: true, Move: &wm})
}

// ---- Validate ----

type validateReq struct {
	Pegs domain.Pegs `json:"pegs"`
}

type validateResp struct {
	OK         bool               `json:"ok"`
	Violations []domain.Violation `json:"violations,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, violations, err := h.UC.Validate(r.Context(), req.Pegs)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Violations: violations})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var g domain.Game
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if g.ID == "" {
		g.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if g.CreatedAt == 0 {
		g.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &g); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: g.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Game  *domain.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	g, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Game: g})
}

type listResp struct {
	Games []domain.GameMeta `json:"games"`
	Error string            `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	gs, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Games: gs})
}
