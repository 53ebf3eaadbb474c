package service

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"go.uber.org/fx"

	"github.com/ncnews/backend/internal/accessor"
	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/storage"
	"github.com/ncnews/backend/pkg/txutils"
)

// Sentinel error texts double as the wire msg, so they carry the exact
// phrasing of the public contract.
var (
	ErrArticleNotFound     = errors.New("Article not found")
	ErrTopicNotFound       = errors.New("Topic not found")
	ErrUnableCreateArticle = errors.New("unable create the article")
)

type ArticleService struct {
	db      *sql.DB
	queries storage.Querier
}

func (s *ArticleService) GetArticleByID(ctx context.Context, id int64) (model.Article, error) {
	row, err := s.queries.GetArticleByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilArticle, ErrArticleNotFound
	}
	if err != nil {
		return model.NilArticle, err
	}
	return accessor.ArticleFromRow(row), nil
}

// GetArticles returns the summary projection of every article, newest
// first. A topic filter is validated against the topics table before the
// listing runs, so an unknown slug is a not-found and an empty result for a
// known slug stays a success.
func (s *ArticleService) GetArticles(ctx context.Context, topic string) ([]model.ArticleSummary, error) {
	if topic == "" {
		rows, err := s.queries.ListArticles(ctx)
		if err != nil {
			return nil, err
		}
		return accessor.ArticleSummariesFromRows(rows), nil
	}

	if _, err := s.queries.GetTopicBySlug(ctx, topic); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}

	rows, err := s.queries.ListArticlesByTopic(ctx, topic)
	if err != nil {
		return nil, err
	}
	return accessor.ArticleSummariesFromRows(rows), nil
}

func (s *ArticleService) UpdateArticleVotes(ctx context.Context, id int64, incVotes int) (model.Article, error) {
	row, err := s.queries.UpdateArticleVotes(ctx, storage.UpdateArticleVotesParams{
		IncVotes:  incVotes,
		ArticleID: id,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilArticle, ErrArticleNotFound
	}
	if err != nil {
		return model.NilArticle, err
	}
	return accessor.ArticleFromRow(row), nil
}

func (s *ArticleService) GetArticleIDByTitleAndTopic(ctx context.Context, params storage.GetArticleIDByTitleAndTopicParams) (int64, error) {
	return s.queries.GetArticleIDByTitleAndTopic(ctx, params)
}

type NewArticleParams struct {
	Article          storage.NewArticleParams
	TopicDescription string
	AuthorName       string
	AuthorAvatarURL  string
}

// NewArticle seeds an article coming from outside the HTTP surface. The
// referenced topic and author are created in the same transaction so the
// article insert never trips its foreign keys halfway through.
func (s *ArticleService) NewArticle(ctx context.Context, params NewArticleParams) (id int64, err error) {
	err = txutils.WithTransaction(s.db, func(queries *storage.Queries) error {
		if err := queries.NewTopic(ctx, storage.NewTopicParams{
			Slug:        params.Article.Topic,
			Description: params.TopicDescription,
		}); err != nil {
			log.Printf("unable create the topic %s. Err:%s", params.Article.Topic, err)
			return ErrUnableCreateArticle
		}

		if err := queries.NewUser(ctx, storage.NewUserParams{
			Username:  params.Article.Author,
			Name:      params.AuthorName,
			AvatarURL: params.AuthorAvatarURL,
		}); err != nil {
			log.Printf("unable create the user %s. Err:%s", params.Article.Author, err)
			return ErrUnableCreateArticle
		}

		articleID, err := queries.NewArticle(ctx, params.Article)
		if err != nil {
			log.Printf("unable create the article. Err:%s", err)
			return ErrUnableCreateArticle
		}

		id = articleID
		return nil
	})
	return id, err
}

type NewArticleServiceParams struct {
	fx.In

	DB *sql.DB
}

func NewArticleService(params NewArticleServiceParams) *ArticleService {
	return &ArticleService{
		db:      params.DB,
		queries: storage.New(params.DB),
	}
}
