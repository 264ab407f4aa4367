package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/mengfei0517/robocasa/pkg/errors"
	"github.com/mengfei0517/robocasa/pkg/pipeline"
	"github.com/mengfei0517/robocasa/pkg/scene"
	"github.com/mengfei0517/robocasa/pkg/store"
)

// resolveRequest is the POST /v1/scenes/resolve body.
type resolveRequest struct {
	Document    *scene.Document `json:"document"`
	Seed        uint64          `json:"seed,omitempty"`
	RetryBudget int             `json:"retry_budget,omitempty"`
	Refresh     bool            `json:"refresh,omitempty"`
}

// resolveResponse is the POST /v1/scenes/resolve response.
type resolveResponse struct {
	Scene    *scene.Scene `json:"scene"`
	DocHash  string       `json:"doc_hash"`
	CacheHit bool         `json:"cache_hit"`
}

// errorResponse is the JSON body for all error statuses.
type errorResponse struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if req.Document == nil {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidDocument, "document is required"))
		return
	}
	for _, e := range req.Document.Entities {
		if err := apperrors.ValidateEntityName(e.Name); err != nil {
			writeError(w, err)
			return
		}
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Document:    req.Document,
		Seed:        req.Seed,
		RetryBudget: req.RetryBudget,
		Refresh:     req.Refresh,
		Logger:      s.logger,
	})
	if err != nil {
		writeError(w, apperrors.FromResolution(err))
		return
	}

	if err := s.store.Put(r.Context(), result.Scene); err != nil {
		s.logger.Error("archiving scene failed", "pass", result.Scene.PassID, "err", err)
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		Scene:    result.Scene,
		DocHash:  result.DocHash,
		CacheHit: result.CacheInfo.SceneHit,
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := apperrors.ValidatePassID(id); err != nil {
		writeError(w, err)
		return
	}

	sc, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, apperrors.New(apperrors.ErrCodeSceneNotFound, "no scene with pass id %q", id))
		return
	}
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "loading scene failed"))
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// statusFor maps boundary error codes to HTTP statuses.
func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidDocument,
		apperrors.ErrCodeInvalidCatalog:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnresolvedReference,
		apperrors.ErrCodeCyclicDependency,
		apperrors.ErrCodeInvalidStack,
		apperrors.ErrCodeAmbiguousDimension,
		apperrors.ErrCodePlacementInfeasible:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeNotFound,
		apperrors.ErrCodeSceneNotFound,
		apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorResponse{
		Code:    code,
		Message: apperrors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
