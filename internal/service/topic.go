package service

import (
	"context"
	"database/sql"

	"go.uber.org/fx"

	"github.com/ncnews/backend/internal/accessor"
	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/storage"
)

type TopicService struct {
	queries storage.Querier
}

func (s *TopicService) GetTopics(ctx context.Context) ([]model.Topic, error) {
	rows, err := s.queries.ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	return accessor.TopicsFromRows(rows), nil
}

type NewTopicServiceParams struct {
	fx.In

	DB *sql.DB
}

func NewTopicService(params NewTopicServiceParams) *TopicService {
	return &TopicService{
		queries: storage.New(params.DB),
	}
}
