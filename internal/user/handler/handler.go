package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"user-registry/internal/user/models"
	"user-registry/internal/user/service"
	"user-registry/pkg/platform/httputil"
	"user-registry/pkg/requestcontext"
)

// Service defines the interface for user registry operations.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	AddUser(ctx context.Context, cmd *service.AddUserCommand) error
	RemoveUser(ctx context.Context, rawID string) error
	GetAllUsers(ctx context.Context) ([]models.UserView, error)
	FindUsers(ctx context.Context, criteria models.SearchCriteria) ([]models.UserView, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/api/v1/users", func(r chi.Router) {
		r.Get("/list", h.HandleGetAllUsers)
		r.Get("/", h.HandleFindUsers)
		r.Post("/", h.HandleAddUser)
		r.Delete("/{id}", h.HandleRemoveUser)
	})
}

// HandleAddUser registers a new user after validation and duplicate checks.
func (h *Handler) HandleAddUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[AddUserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.AddUser(ctx, req.ToCommand()); err != nil {
		h.logger.WarnContext(ctx, "add user failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, MessageResponse{Message: MessageUserAdded})
}

// HandleRemoveUser deletes a user by id. The raw path segment is handed to the
// service untouched; id parsing is a domain concern with its own error message.
func (h *Handler) HandleRemoveUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	rawID := chi.URLParam(r, "id")

	if err := h.service.RemoveUser(ctx, rawID); err != nil {
		h.logger.WarnContext(ctx, "remove user failed", "error", err, "request_id", requestID, "raw_id", rawID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, MessageResponse{Message: MessageUserRemoved})
}

// HandleGetAllUsers returns every stored user with derived age.
func (h *Handler) HandleGetAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	views, err := h.service.GetAllUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list users failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toUserResponses(views))
}

// HandleFindUsers answers filtered queries. Each query parameter that is
// present becomes an exact-match constraint; absent parameters impose none.
func (h *Handler) HandleFindUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	views, err := h.service.FindUsers(ctx, criteriaFromQuery(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "find users failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toUserResponses(views))
}

func criteriaFromQuery(r *http.Request) models.SearchCriteria {
	q := r.URL.Query()
	var criteria models.SearchCriteria
	if q.Has("firstName") {
		v := q.Get("firstName")
		criteria.FirstName = &v
	}
	if q.Has("lastName") {
		v := q.Get("lastName")
		criteria.LastName = &v
	}
	if q.Has("birthNumber") {
		v := q.Get("birthNumber")
		criteria.BirthNumber = &v
	}
	return criteria
}
