package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/mbforbes/beautyplot/pkg/buildinfo"
	"github.com/mbforbes/beautyplot/pkg/errors"
	"github.com/mbforbes/beautyplot/pkg/pipeline"
)

// CacheHeader reports whether a rendered artifact came from cache.
const CacheHeader = "X-Cache"

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Theme)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := valueOr(q.Get("format"), pipeline.FormatSVG)
	engine := valueOr(q.Get("engine"), pipeline.EngineSVG)
	raw := false
	if v := q.Get("raw"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "raw must be a boolean, got %q", v))
			return
		}
		raw = b
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	res, err := s.cfg.Runner.Execute(r.Context(), pipeline.Options{
		Spec:    body,
		Theme:   s.cfg.Theme,
		Formats: []string{format},
		Engine:  engine,
		Raw:     raw,
		Logger:  s.cfg.Logger,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheStatus := "miss"
	if res.CacheHits[format] {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set(CacheHeader, cacheStatus)
	w.Header().Set("ETag", strconv.Quote(res.SpecHash[:16]+"-"+format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// writeError maps validation codes to 400 and everything else to 500.
// Internal details are logged, not returned.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
		msg = errors.Detail(err)
	case code == errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
		msg = errors.UserMessage(err)
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.cfg.Logger.Error("render failed", "id", RequestIDFrom(r.Context()), "err", err)
	}
	writeJSON(w, status, errorBody{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
