package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/playfair/pkg/buildinfo"
	perrors "github.com/matzehuels/playfair/pkg/errors"
	"github.com/matzehuels/playfair/pkg/pipeline"
	"github.com/matzehuels/playfair/pkg/playfair"
)

// =============================================================================
// Form
// =============================================================================

// pageData is the template context for index.html.
type pageData struct {
	Text    string
	Result  string
	Actions []pipeline.Action
	Version string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, pageData{})
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, http.StatusBadRequest, pageData{Result: "Error: could not read form."})
		return
	}

	opts := pipeline.Options{
		Text:   r.PostForm.Get("text"),
		Key:    r.PostForm.Get("key"),
		Action: r.PostForm.Get("action"),
	}

	data := pageData{Text: opts.Text}
	if err := validate(opts); err != nil {
		data.Result = formMessage(err)
		s.render(w, http.StatusOK, data)
		return
	}

	msg, err := s.runner.Message(r.Context(), opts)
	if err != nil {
		s.logger.Error("form request failed", "err", err, "request_id", requestIDFromContext(r.Context()))
		data.Result = "Error: internal error."
		s.render(w, http.StatusInternalServerError, data)
		return
	}
	data.Result = msg
	s.render(w, http.StatusOK, data)
}

// formMessage turns a refusal into the line shown on the page.
func formMessage(err error) string {
	if msg := pipeline.MessageFor(err); msg != "" {
		return msg
	}
	return "Error: " + perrors.UserMessage(err) + "."
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	data.Actions = pipeline.Actions
	data.Version = buildinfo.Get().Short()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("render page", "err", err)
	}
}

// validate applies the network-facing limits in the caller contract's order:
// key, then action, then text.
func validate(opts pipeline.Options) error {
	if err := perrors.ValidateKey(opts.Key); err != nil {
		return err
	}
	if _, err := pipeline.ParseAction(opts.Action); err != nil {
		return err
	}
	return perrors.ValidateText(opts.Text)
}

// =============================================================================
// JSON API
// =============================================================================

type transformRequest struct {
	Text string `json:"text"`
	Key  string `json:"key"`
}

type transformResponse struct {
	Action string   `json:"action"`
	Result string   `json:"result"`
	Grid   []string `json:"grid"`
}

type gridRequest struct {
	Key string `json:"key"`
}

type gridResponse struct {
	Grid []string `json:"grid"`
}

type errorBody struct {
	Code    perrors.Code `json:"code"`
	Message string       `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		Text:   req.Text,
		Key:    req.Key,
		Action: chi.URLParam(r, "action"),
	}
	if err := validate(opts); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, transformResponse{
		Action: result.Action.Lower(),
		Result: result.Output,
		Grid:   gridRows(result.Grid),
	})
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	var req gridRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := perrors.ValidateKey(req.Key); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, gridResponse{Grid: gridRows(playfair.BuildGrid(req.Key))})
}

func gridRows(g playfair.Grid) []string {
	rows := g.Rows()
	return rows[:]
}

// decodeJSON reads exactly one JSON object into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return perrors.New(perrors.ErrCodeInvalidInput, "request body too large")
		}
		return perrors.Wrap(perrors.ErrCodeInvalidInput, err, "invalid JSON body")
	}
	if _, err := dec.Token(); err != io.EOF {
		return perrors.New(perrors.ErrCodeInvalidInput, "request body must hold a single JSON object")
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	body := errorBody{Code: perrors.GetCode(err), Message: perrors.UserMessage(err)}

	if !perrors.IsCallerError(err) {
		status = http.StatusInternalServerError
		s.logger.Error("api request failed", "err", err, "request_id", requestIDFromContext(r.Context()))
		body = errorBody{Code: perrors.ErrCodeInternal, Message: "internal error"}
	}
	writeJSON(w, status, errorResponse{Error: body})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// =============================================================================
// Health & Version
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}
