package accessor

import (
	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/storage"
)

func CommentFromRow(row storage.CommentRow) model.Comment {
	return model.Comment{
		CommentID: row.CommentID,
		ArticleID: row.ArticleID,
		Author:    row.Author,
		Body:      row.Body,
		Votes:     row.Votes,
		CreatedAt: row.CreatedAt,
	}
}

func CommentsFromRows(rows []storage.CommentRow) []model.Comment {
	comments := make([]model.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, CommentFromRow(row))
	}
	return comments
}
