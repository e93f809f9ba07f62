package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mvasquez/newsboard/internal/model"
)

type userService interface {
	List(ctx context.Context) ([]model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// UserHandler serves the /api/users routes.
type UserHandler struct {
	service userService
	logger  *slog.Logger
}

func NewUserHandler(service userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger}
}

// HandleList serves GET /api/users.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"users": users})
}

// HandleGetByUsername serves GET /api/users/{username}.
func (h *UserHandler) HandleGetByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"user": user})
}
