package storage

import (
	"context"
	"time"
)

const listArticleComments = `
SELECT comment_id, article_id, author, body, votes, created_at
FROM comments
WHERE article_id = $1
ORDER BY created_at DESC
`

type CommentRow struct {
	CommentID int64
	ArticleID int64
	Author    string
	Body      string
	Votes     int
	CreatedAt time.Time
}

func (q *Queries) ListArticleComments(ctx context.Context, articleID int64) ([]CommentRow, error) {
	rows, err := q.db.QueryContext(ctx, listArticleComments, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CommentRow
	for rows.Next() {
		var i CommentRow
		if err := rows.Scan(
			&i.CommentID,
			&i.ArticleID,
			&i.Author,
			&i.Body,
			&i.Votes,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const newComment = `
INSERT INTO comments (article_id, author, body)
VALUES ($1, $2, $3)
RETURNING comment_id, article_id, author, body, votes, created_at
`

type NewCommentParams struct {
	ArticleID int64
	Author    string
	Body      string
}

func (q *Queries) NewComment(ctx context.Context, params NewCommentParams) (CommentRow, error) {
	var i CommentRow
	err := q.db.QueryRowContext(ctx, newComment, params.ArticleID, params.Author, params.Body).Scan(
		&i.CommentID,
		&i.ArticleID,
		&i.Author,
		&i.Body,
		&i.Votes,
		&i.CreatedAt,
	)
	return i, err
}

const deleteComment = `
DELETE FROM comments WHERE comment_id = $1
`

func (q *Queries) DeleteComment(ctx context.Context, commentID int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteComment, commentID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
