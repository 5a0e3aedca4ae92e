// Package httpapi serves the duration parser, explanations and ROI
// assessment over HTTP for "worthit serve --http".
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/internal/duration"
	"github.com/jpl-au/worthit/internal/explain"
	"github.com/jpl-au/worthit/internal/log"
	"github.com/jpl-au/worthit/internal/roi"
	"github.com/jpl-au/worthit/internal/validate"
)

// maxBody caps POST bodies; four phrases never need more.
const maxBody = 64 * 1024

// ParseResponse is the body of a successful GET /v1/parse.
type ParseResponse struct {
	Phrase string  `json:"phrase"`
	Unit   string  `json:"unit"`
	Value  float64 `json:"value"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler bundles the dependencies of the HTTP API.
type Handler struct {
	ext    extension.Context
	logger *slog.Logger
}

// New constructs a Handler. Configuration is read through ext on every
// request so config changes apply after a reload.
func New(ext extension.Context, logger *slog.Logger) *Handler {
	return &Handler{ext: ext, logger: logger}
}

// Router wires the handler into a chi router.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", h.getHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/parse", h.getParse)
		r.Get("/explain", h.getExplain)
		r.Post("/roi", h.postROI)
	})
	return r
}

// logRequests records one slog line per request.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (h *Handler) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getParse handles GET /v1/parse?phrase=...&unit=...
func (h *Handler) getParse(w http.ResponseWriter, r *http.Request) {
	cfg := h.ext.Config()
	phrase := r.URL.Query().Get("phrase")

	unit := cfg.Unit()
	if s := r.URL.Query().Get("unit"); s != "" {
		u, err := duration.ParseUnit(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		unit = u
	}

	l := log.Event("http:parse", "parse").Input(phrase).Unit(unit.String())

	if err := validate.Phrase(phrase, cfg.MaxPhrase()); err != nil {
		l.Write(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	v, ok := duration.Parse(phrase, &duration.Config{OutputUnit: unit})
	if !ok {
		l.Write(validate.ErrUnparsable)
		writeError(w, http.StatusUnprocessableEntity, validate.ErrUnparsable)
		return
	}
	l.Result(v).Write(nil)

	writeJSON(w, http.StatusOK, ParseResponse{Phrase: phrase, Unit: unit.String(), Value: v})
}

// getExplain handles GET /v1/explain?phrase=... A phrase that fails to
// parse still gets a 200: the explanation is the answer.
func (h *Handler) getExplain(w http.ResponseWriter, r *http.Request) {
	phrase := r.URL.Query().Get("phrase")

	l := log.Event("http:explain", "explain").Input(phrase)

	if err := validate.Phrase(phrase, h.ext.Config().MaxPhrase()); err != nil {
		l.Write(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rep := explain.Explain(phrase)
	if rep.OK() {
		l.Result(*rep.Millis)
	}
	l.Detail("reasons", rep.Reasons).Write(nil)

	writeJSON(w, http.StatusOK, rep)
}

// postROI handles POST /v1/roi with a JSON body of four phrases.
func (h *Handler) postROI(w http.ResponseWriter, r *http.Request) {
	var p roi.Phrases
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	l := log.Event("http:roi", "assess").
		Detail("every", p.Every).
		Detail("spent", p.Spent).
		Detail("saved", p.Saved).
		Detail("automate", p.Automate)

	if err := p.Validate(h.ext.Config().MaxPhrase()); err != nil {
		l.Write(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := roi.AssessPhrases(p)
	if err != nil {
		l.Write(err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	l.Result(res.MonthsUntilROI).Unit(duration.Months.String()).
		Detail("recommendation", res.Recommendation).
		Write(nil)

	writeJSON(w, http.StatusOK, res)
}

// writeJSON writes a value as JSON with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes err in the ErrorResponse envelope. Joined errors are
// flattened onto one line.
func writeError(w http.ResponseWriter, status int, err error) {
	msg := err.Error()
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		msg = ""
		for i, e := range joined.Unwrap() {
			if i > 0 {
				msg += "; "
			}
			msg += e.Error()
		}
	}
	writeJSON(w, status, ErrorResponse{Error: msg})
}
