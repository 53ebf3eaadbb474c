package accessor

import (
	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/storage"
)

func TopicsFromRows(rows []storage.TopicRow) []model.Topic {
	topics := make([]model.Topic, 0, len(rows))
	for _, row := range rows {
		topics = append(topics, model.Topic{
			Slug:        row.Slug,
			Description: row.Description,
		})
	}
	return topics
}
