package web

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/kapu/pitch-ai-go/internal/constants"
	"github.com/kapu/pitch-ai-go/internal/domain"
	"github.com/kapu/pitch-ai-go/internal/pitch"
	"github.com/kapu/pitch-ai-go/internal/util"
	"github.com/kapu/pitch-ai-go/pkg/errors"
	"go.uber.org/zap"
)

type GenerateRequest struct {
	Idea string `json:"idea" validate:"required"`
}

type GenerateResponse struct {
	RequestID string                `json:"requestId"`
	Pitch     string                `json:"pitch"`
	LogoURL   string                `json:"logoUrl"`
	Sections  []domain.PitchSection `json:"sections"`
}

type pageData struct {
	Idea      string
	Error     string
	RequestID string
	HasResult bool
	Sections  []sectionView
	LogoURL   template.URL
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, pageData{})
}

func (s *Server) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.ServerConfig.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	rawIdea := r.FormValue("idea")
	data := pageData{Idea: rawIdea}

	idea, err := s.validateIdea(rawIdea)
	if err != nil {
		data.Error = constants.UserMessages.EmptyIdea
		s.renderPage(w, statusFor(err), data)
		return
	}

	ctx, requestID := withRequestID(r.Context())
	w.Header().Set("X-Request-ID", requestID)
	data.RequestID = requestID

	result, err := s.generator.Generate(ctx, idea)
	if err != nil {
		data.Error = constants.UserMessages.GenerationFailed
		s.renderPage(w, statusFor(err), data)
		return
	}

	data.HasResult = true
	data.Sections = buildSectionViews(pitch.Parse(result.PitchText))
	// built locally from base64 output, safe for src
	data.LogoURL = template.URL(result.LogoImage)
	s.renderPage(w, http.StatusOK, data)
}

func (s *Server) handleGenerateAPI(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.ServerConfig.MaxBodyBytes)

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	idea, err := s.validateIdea(req.Idea)
	if err != nil {
		s.writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	ctx, requestID := withRequestID(r.Context())
	w.Header().Set("X-Request-ID", requestID)

	result, err := s.generator.Generate(ctx, idea)
	if err != nil {
		s.writeJSON(w, statusFor(err), map[string]string{
			"error":     constants.UserMessages.GenerationFailed,
			"requestId": requestID,
		})
		return
	}

	s.writeJSON(w, http.StatusOK, newGenerateResponse(requestID, result))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":   "ok",
		"provider": s.generator.Provider(),
	}
	if s.circuit != nil {
		resp["circuit"] = s.circuit.CircuitStatus()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// validateIdea trims the idea and rejects it when nothing is left.
func (s *Server) validateIdea(raw string) (string, error) {
	req := GenerateRequest{Idea: strings.TrimSpace(raw)}
	if err := s.validate.Struct(req); err != nil {
		return "", errors.NewValidationError("idea must not be empty", "idea", raw)
	}
	return req.Idea, nil
}

func withRequestID(ctx context.Context) (context.Context, string) {
	requestID := uuid.NewString()
	return util.WithRequestID(ctx, requestID), requestID
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	var buf strings.Builder
	if err := s.templates.ExecuteTemplate(&buf, "index", data); err != nil {
		s.logger.Error("error executing template", zap.Error(err))
		http.Error(w, "Render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("Failed to encode JSON response", zap.Error(err))
	}
}

func newGenerateResponse(requestID string, result *domain.GenerationResult) GenerateResponse {
	return GenerateResponse{
		RequestID: requestID,
		Pitch:     result.PitchText,
		LogoURL:   result.LogoImage,
		Sections:  pitch.Parse(result.PitchText),
	}
}

// statusFor maps an error kind to the HTTP status shown to the client.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrValidation):
		return http.StatusBadRequest
	case stderrors.Is(err, errors.ErrCombinedGeneration),
		stderrors.Is(err, errors.ErrTextGeneration),
		stderrors.Is(err, errors.ErrImageGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
