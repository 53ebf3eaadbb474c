package storage

import (
	"context"
	"database/sql"
	"time"
)

const getArticleByID = `
SELECT article_id, author, title, body, topic, created_at, votes, article_img_url
FROM articles
WHERE article_id = $1
`

type ArticleRow struct {
	ArticleID     int64
	Author        string
	Title         string
	Body          string
	Topic         string
	CreatedAt     time.Time
	Votes         int
	ArticleImgURL string
}

func (q *Queries) GetArticleByID(ctx context.Context, articleID int64) (ArticleRow, error) {
	var i ArticleRow
	err := q.db.QueryRowContext(ctx, getArticleByID, articleID).Scan(
		&i.ArticleID,
		&i.Author,
		&i.Title,
		&i.Body,
		&i.Topic,
		&i.CreatedAt,
		&i.Votes,
		&i.ArticleImgURL,
	)
	return i, err
}

// The summary projection deliberately leaves the body out and folds the
// comment count in through an outer join, so zero-comment articles still
// appear with a count of 0.
const listArticles = `
SELECT a.article_id, a.author, a.title, a.topic, a.created_at, a.votes, a.article_img_url,
       COUNT(c.comment_id)::INT AS comment_count
FROM articles a
LEFT JOIN comments c ON c.article_id = a.article_id
GROUP BY a.article_id
ORDER BY a.created_at DESC
`

type ArticleSummaryRow struct {
	ArticleID     int64
	Author        string
	Title         string
	Topic         string
	CreatedAt     time.Time
	Votes         int
	ArticleImgURL string
	CommentCount  int
}

func (q *Queries) ListArticles(ctx context.Context) ([]ArticleSummaryRow, error) {
	rows, err := q.db.QueryContext(ctx, listArticles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticleSummaryRows(rows)
}

const listArticlesByTopic = `
SELECT a.article_id, a.author, a.title, a.topic, a.created_at, a.votes, a.article_img_url,
       COUNT(c.comment_id)::INT AS comment_count
FROM articles a
LEFT JOIN comments c ON c.article_id = a.article_id
WHERE a.topic = $1
GROUP BY a.article_id
ORDER BY a.created_at DESC
`

func (q *Queries) ListArticlesByTopic(ctx context.Context, topic string) ([]ArticleSummaryRow, error) {
	rows, err := q.db.QueryContext(ctx, listArticlesByTopic, topic)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticleSummaryRows(rows)
}

func scanArticleSummaryRows(rows *sql.Rows) ([]ArticleSummaryRow, error) {
	var items []ArticleSummaryRow
	for rows.Next() {
		var i ArticleSummaryRow
		if err := rows.Scan(
			&i.ArticleID,
			&i.Author,
			&i.Title,
			&i.Topic,
			&i.CreatedAt,
			&i.Votes,
			&i.ArticleImgURL,
			&i.CommentCount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// The delta is applied inside the statement itself. Doing a read-then-write
// from the service would lose updates under concurrent PATCH requests.
const updateArticleVotes = `
UPDATE articles
SET votes = votes + $1
WHERE article_id = $2
RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url
`

type UpdateArticleVotesParams struct {
	IncVotes  int
	ArticleID int64
}

func (q *Queries) UpdateArticleVotes(ctx context.Context, params UpdateArticleVotesParams) (ArticleRow, error) {
	var i ArticleRow
	err := q.db.QueryRowContext(ctx, updateArticleVotes, params.IncVotes, params.ArticleID).Scan(
		&i.ArticleID,
		&i.Author,
		&i.Title,
		&i.Body,
		&i.Topic,
		&i.CreatedAt,
		&i.Votes,
		&i.ArticleImgURL,
	)
	return i, err
}

const newArticle = `
INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
VALUES ($1, $2, $3, $4, COALESCE($5, now()), $6, $7)
RETURNING article_id
`

type NewArticleParams struct {
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     sql.NullTime
	Votes         int
	ArticleImgURL string
}

func (q *Queries) NewArticle(ctx context.Context, params NewArticleParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, newArticle,
		params.Title,
		params.Topic,
		params.Author,
		params.Body,
		params.CreatedAt,
		params.Votes,
		params.ArticleImgURL,
	).Scan(&id)
	return id, err
}

const getArticleIDByTitleAndTopic = `
SELECT article_id FROM articles WHERE title = $1 AND topic = $2
`

type GetArticleIDByTitleAndTopicParams struct {
	Title string
	Topic string
}

func (q *Queries) GetArticleIDByTitleAndTopic(ctx context.Context, params GetArticleIDByTitleAndTopicParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, getArticleIDByTitleAndTopic, params.Title, params.Topic).Scan(&id)
	return id, err
}
