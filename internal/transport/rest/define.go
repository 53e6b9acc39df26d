package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/dictionary-connector/internal/domain"
)

// lookupService defines the minimal interface needed by DefineHandler.
type lookupService interface {
	Lookup(ctx context.Context, word string) (*domain.Summary, error)
}

// DefineHandler serves the public dictionary endpoints.
type DefineHandler struct {
	svc         lookupService
	serviceName string
	log         *slog.Logger
}

// NewDefineHandler creates a DefineHandler.
func NewDefineHandler(svc lookupService, serviceName string, logger *slog.Logger) *DefineHandler {
	return &DefineHandler{
		svc:         svc,
		serviceName: serviceName,
		log:         logger.With("handler", "define"),
	}
}

// Register mounts the public routes on mux.
func (h *DefineHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /define", h.Define)
}

// Root handles GET /.
func (h *DefineHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{OK: true, Service: h.serviceName})
}

// Define handles GET /define?word=.
func (h *DefineHandler) Define(w http.ResponseWriter, r *http.Request) {
	word, err := parseWord(r)
	if err != nil {
		h.handleError(w, r, word, err)
		return
	}

	summary, err := h.svc.Lookup(r.Context(), word)
	if err != nil {
		h.handleError(w, r, word, err)
		return
	}

	writeJSON(w, http.StatusOK, defineResponse{Success: true, Result: toSummaryResponse(summary)})
}

// parseWord returns the trimmed word query parameter, or a
// *domain.ValidationError when it is missing or blank.
func parseWord(r *http.Request) (string, error) {
	word := strings.TrimSpace(r.URL.Query().Get("word"))
	if word == "" {
		return "", domain.NewValidationError("word", "required")
	}
	return word, nil
}

func (h *DefineHandler) handleError(w http.ResponseWriter, r *http.Request, word string, err error) {
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, "Missing query param: word")
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, failureResponse{Success: false, Error: "Word not found"})
		return
	}

	h.log.ErrorContext(r.Context(), "lookup failed",
		slog.String("word", word),
		slog.String("error", err.Error()),
	)

	details := diagnostic(err)
	writeJSON(w, http.StatusInternalServerError, failureResponse{
		Success: false,
		Error:   "Server error",
		Details: &details,
	})
}

// diagnostic returns the upstream message when there is one, without the
// wrapping added on the way up.
func diagnostic(err error) string {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return ue.Error()
	}
	return err.Error()
}
