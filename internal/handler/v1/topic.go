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

type topicService interface {
	GetTopics(ctx context.Context) ([]model.Topic, error)
}

type topicHandler struct {
	topicService topicService
}

type getTopicsResponse struct {
	Topics []model.Topic `json:"topics"`
}

func (hand *topicHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := hand.topicService.GetTopics(r.Context())
	if err != nil {
		log.Printf("Unable list topics. Err:%s", err)
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, &getTopicsResponse{Topics: topics})
}

func (hand *topicHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		r.Get("/api/topics", hand.GetTopics)
	}
}

var _ httputils.Handler = (*topicHandler)(nil)

type NewTopicHandlerParams struct {
	fx.In

	TopicService *service.TopicService
}

func NewTopicHandler(params NewTopicHandlerParams) *topicHandler {
	return &topicHandler{
		topicService: params.TopicService,
	}
}
