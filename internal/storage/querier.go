package storage

import "context"

// Querier mirrors the full query set of Queries. Services depend on it so
// tests can swap the database for an in-memory fake.
type Querier interface {
	ListTopics(ctx context.Context) ([]TopicRow, error)
	GetTopicBySlug(ctx context.Context, slug string) (TopicRow, error)
	NewTopic(ctx context.Context, params NewTopicParams) error

	ListUsers(ctx context.Context) ([]UserRow, error)
	GetUserByUsername(ctx context.Context, username string) (UserRow, error)
	NewUser(ctx context.Context, params NewUserParams) error

	GetArticleByID(ctx context.Context, articleID int64) (ArticleRow, error)
	ListArticles(ctx context.Context) ([]ArticleSummaryRow, error)
	ListArticlesByTopic(ctx context.Context, topic string) ([]ArticleSummaryRow, error)
	UpdateArticleVotes(ctx context.Context, params UpdateArticleVotesParams) (ArticleRow, error)
	NewArticle(ctx context.Context, params NewArticleParams) (int64, error)
	GetArticleIDByTitleAndTopic(ctx context.Context, params GetArticleIDByTitleAndTopicParams) (int64, error)

	ListArticleComments(ctx context.Context, articleID int64) ([]CommentRow, error)
	NewComment(ctx context.Context, params NewCommentParams) (CommentRow, error)
	DeleteComment(ctx context.Context, commentID int64) (int64, error)
}

var _ Querier = (*Queries)(nil)
