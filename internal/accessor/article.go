package accessor

import (
	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/storage"
)

func ArticleFromRow(row storage.ArticleRow) model.Article {
	return model.Article{
		ArticleID:     row.ArticleID,
		Author:        row.Author,
		Title:         row.Title,
		Body:          row.Body,
		Topic:         row.Topic,
		CreatedAt:     row.CreatedAt,
		Votes:         row.Votes,
		ArticleImgURL: row.ArticleImgURL,
	}
}

func ArticleSummariesFromRows(rows []storage.ArticleSummaryRow) []model.ArticleSummary {
	// Empty lists must serialize as [], not null.
	articles := make([]model.ArticleSummary, 0, len(rows))
	for _, row := range rows {
		articles = append(articles, model.ArticleSummary{
			ArticleID:     row.ArticleID,
			Author:        row.Author,
			Title:         row.Title,
			Topic:         row.Topic,
			CreatedAt:     row.CreatedAt,
			Votes:         row.Votes,
			ArticleImgURL: row.ArticleImgURL,
			CommentCount:  row.CommentCount,
		})
	}
	return articles
}
