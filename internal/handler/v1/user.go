package handler

import (
	"context"
	"log"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/service"
	"github.com/ncnews/backend/pkg/httputils"
)

type userService interface {
	GetUsers(ctx context.Context) ([]model.User, error)
}

type userHandler struct {
	userService userService
}

type getUsersResponse struct {
	Users []model.User `json:"users"`
}

func (hand *userHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := hand.userService.GetUsers(r.Context())
	if err != nil {
		log.Printf("Unable list users. Err:%s", err)
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, &getUsersResponse{Users: users})
}

func (hand *userHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		r.Get("/api/users", hand.GetUsers)
	}
}

var _ httputils.Handler = (*userHandler)(nil)

type NewUserHandlerParams struct {
	fx.In

	UserService *service.UserService
}

func NewUserHandler(params NewUserHandlerParams) *userHandler {
	return &userHandler{
		userService: params.UserService,
	}
}
