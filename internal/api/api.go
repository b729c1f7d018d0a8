// Package api exposes the pattern compiler and matcher over HTTP, using the
// same chi router and middleware stack the teacher's main.go wires up for
// the file server.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/haliax/globc/pkg/minimatch"
)

// NewRouter builds the service's chi.Router: request logging and gzip
// compression, then the /compile and /match endpoints.
func NewRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Compress(5))

	r.Post("/compile", handleCompile)
	r.Post("/match", handleMatch)

	return r
}

type optionsWire struct {
	NoCase     bool `json:"nocase"`
	Dot        bool `json:"dot"`
	NoExt      bool `json:"noExt"`
	NoBrace    bool `json:"noBrace"`
	NoGlobStar bool `json:"noGlobStar"`
	MatchBase  bool `json:"matchBase"`
}

func (o optionsWire) toOptions() minimatch.Options {
	return minimatch.Options{
		NoCase:     o.NoCase,
		Dot:        o.Dot,
		NoExt:      o.NoExt,
		NoBrace:    o.NoBrace,
		NoGlobStar: o.NoGlobStar,
		MatchBase:  o.MatchBase,
	}
}

type compileRequest struct {
	Pattern string      `json:"pattern"`
	Options optionsWire `json:"options"`
}

type compileResponse struct {
	Literal bool   `json:"literal"`
	Source  string `json:"source"`
	Glob    string `json:"glob"`
}

func handleCompile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	root, err := minimatch.Parse(req.Pattern, req.Options.toOptions())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	pat, err := minimatch.ToPattern(root, req.Options.toOptions())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := compileResponse{Glob: pat.Glob}
	if pat.IsExact {
		resp.Literal = true
		resp.Source = pat.Literal
	} else {
		resp.Source = pat.Src
	}

	writeJSON(w, http.StatusOK, resp)
}

type matchRequest struct {
	Pattern string      `json:"pattern"`
	Paths   []string    `json:"paths"`
	Options optionsWire `json:"options"`
}

type matchResponse struct {
	Matches []string `json:"matches"`
}

func handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	matches := minimatch.Match(req.Paths, req.Pattern, req.Options.toOptions())
	writeJSON(w, http.StatusOK, matchResponse{Matches: matches})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
