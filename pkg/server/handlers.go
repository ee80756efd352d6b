package server

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/hillclimb/pkg/buildinfo"
	"github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/pipeline"
	"github.com/matzehuels/hillclimb/pkg/problem"
	"github.com/matzehuels/hillclimb/pkg/render"
)

// WalkResponse is the body of a successful POST /api/v1/walk.
type WalkResponse struct {
	ID       string   `json:"id"`
	Found    bool     `json:"found"`
	Node     string   `json:"node,omitempty"`
	Steps    int      `json:"steps"`
	Trace    []string `json:"trace"`
	Path     []string `json:"path,omitempty"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
	Cached   bool     `json:"cached"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var contentTypes = map[string]string{
	render.FormatSVG: "image/svg+xml",
	render.FormatPNG: "image/png",
	render.FormatPDF: "application/pdf",
	render.FormatDOT: "text/vnd.graphviz; charset=utf-8",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info := buildinfo.Get()
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": info.Version,
		"commit":  info.Commit,
	})
}

func (s *Server) handleWalk(w http.ResponseWriter, r *http.Request) {
	id := newRunID(w)

	p, err := s.readProblem(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	maxSteps, err := intParam(r, "max_steps")
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), p, pipeline.Options{MaxSteps: maxSteps})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, WalkResponse{
		ID:       id,
		Found:    res.Walk.Found,
		Node:     res.Walk.Node,
		Steps:    res.Walk.Steps,
		Trace:    res.Walk.Trace,
		Path:     res.Path,
		Message:  res.Message,
		Warnings: res.Warnings,
		Cached:   res.CacheInfo.WalkHit,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	newRunID(w)

	p, err := s.readProblem(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = render.FormatSVG
	}
	withPath, _ := strconv.ParseBool(q.Get("path"))
	maxSteps, err := intParam(r, "max_steps")
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), p, pipeline.Options{
		MaxSteps: maxSteps,
		Render:   true,
		Formats:  []string{format},
		Engine:   q.Get("engine"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	artifacts := res.Artifacts.Graph
	if withPath {
		if !res.Walk.Found {
			s.writeError(w, errors.New(errors.ErrCodeNotFound, "%s", res.Message))
			return
		}
		artifacts = res.Artifacts.Path
	}

	w.Header().Set("Content-Type", contentTypes[format])
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func (s *Server) readProblem(w http.ResponseWriter, r *http.Request) (problem.Problem, error) {
	format := problem.FormatJSON
	if ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil && ct == "application/toml" {
		format = problem.FormatTOML
	}
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	defer body.Close()
	return problem.Read(body, format)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, ErrorResponse{Error: msg, Code: string(code)})
}

func statusFor(err error) int {
	switch {
	case errors.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeStepLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func intParam(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be a non-negative integer, got %q", name, v)
	}
	return n, nil
}

func newRunID(w http.ResponseWriter) string {
	id := uuid.NewString()
	w.Header().Set("X-Run-ID", id)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
