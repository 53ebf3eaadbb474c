package worker

import (
	"context"
	"database/sql"
	"testing"
	"time"

	nats "github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/ncnews/backend/internal/service"
	"github.com/ncnews/backend/internal/storage"
	"github.com/ncnews/backend/pkg/natsinfo"
)

type fakeArticleSeeder struct {
	getArticleIDByTitleAndTopic func(ctx context.Context, params storage.GetArticleIDByTitleAndTopicParams) (int64, error)
	newArticle                  func(ctx context.Context, params service.NewArticleParams) (int64, error)
}

func (f *fakeArticleSeeder) GetArticleIDByTitleAndTopic(ctx context.Context, params storage.GetArticleIDByTitleAndTopicParams) (int64, error) {
	return f.getArticleIDByTitleAndTopic(ctx, params)
}

func (f *fakeArticleSeeder) NewArticle(ctx context.Context, params service.NewArticleParams) (int64, error) {
	return f.newArticle(ctx, params)
}

func seedMsg(t *testing.T, article *natsinfo.SeedArticle) *nats.Msg {
	t.Helper()
	data, err := article.Marshal()
	require.NoError(t, err)
	return &nats.Msg{
		Subject: natsinfo.ArticlesStream_NewArticleSubject(article.Topic, article.Title),
		Data:    data,
	}
}

func TestConsumerSeedsUnseenArticle(t *testing.T) {
	createdAt := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)
	article := &natsinfo.SeedArticle{
		Title:            "Seafood substitutions are increasing",
		Topic:            "cooking",
		TopicDescription: "Hey good looking, what you got cooking?",
		Author:           "weegembump",
		AuthorName:       "Gemma Bump",
		AuthorAvatarURL:  "https://example.com/weegembump.jpg",
		Body:             "Text from the article..",
		CreatedAt:        createdAt,
		Votes:            0,
		ArticleImgURL:    "https://example.com/seafood.jpg",
	}

	created := false
	worker := &articleConsumerWorker{articleService: &fakeArticleSeeder{
		getArticleIDByTitleAndTopic: func(ctx context.Context, params storage.GetArticleIDByTitleAndTopicParams) (int64, error) {
			require.Equal(t, article.Title, params.Title)
			require.Equal(t, article.Topic, params.Topic)
			return 0, sql.ErrNoRows
		},
		newArticle: func(ctx context.Context, params service.NewArticleParams) (int64, error) {
			require.Equal(t, article.Title, params.Article.Title)
			require.Equal(t, article.Author, params.Article.Author)
			require.Equal(t, article.TopicDescription, params.TopicDescription)
			require.Equal(t, article.AuthorName, params.AuthorName)
			require.True(t, params.Article.CreatedAt.Valid)
			require.True(t, params.Article.CreatedAt.Time.Equal(createdAt))
			created = true
			return 37, nil
		},
	}}

	worker.handler(context.Background())(seedMsg(t, article))
	require.True(t, created)
}

// A payload without created_at must reach the store as an invalid
// NullTime so the insert falls back to the column default.
func TestConsumerSeedsArticleWithoutCreatedAt(t *testing.T) {
	article := &natsinfo.SeedArticle{
		Title:  "Running a Node App",
		Topic:  "coding",
		Author: "jessjelly",
		Body:   "This is part two of a series...",
	}

	worker := &articleConsumerWorker{articleService: &fakeArticleSeeder{
		getArticleIDByTitleAndTopic: func(ctx context.Context, params storage.GetArticleIDByTitleAndTopicParams) (int64, error) {
			return 0, sql.ErrNoRows
		},
		newArticle: func(ctx context.Context, params service.NewArticleParams) (int64, error) {
			require.False(t, params.Article.CreatedAt.Valid)
			return 38, nil
		},
	}}

	worker.handler(context.Background())(seedMsg(t, article))
}

func TestConsumerSkipsSeededArticle(t *testing.T) {
	article := &natsinfo.SeedArticle{
		Title:  "Seafood substitutions are increasing",
		Topic:  "cooking",
		Author: "weegembump",
	}

	worker := &articleConsumerWorker{articleService: &fakeArticleSeeder{
		getArticleIDByTitleAndTopic: func(ctx context.Context, params storage.GetArticleIDByTitleAndTopicParams) (int64, error) {
			return 37, nil
		},
		newArticle: func(ctx context.Context, params service.NewArticleParams) (int64, error) {
			t.Fatal("an already seeded article must not be inserted again")
			return 0, nil
		},
	}}

	worker.handler(context.Background())(seedMsg(t, article))
}

func TestConsumerDropsMalformedPayload(t *testing.T) {
	worker := &articleConsumerWorker{articleService: &fakeArticleSeeder{
		getArticleIDByTitleAndTopic: func(ctx context.Context, params storage.GetArticleIDByTitleAndTopicParams) (int64, error) {
			t.Fatal("a malformed payload must never reach the store")
			return 0, nil
		},
	}}

	worker.handler(context.Background())(&nats.Msg{
		Subject: "article.cooking.broken",
		Data:    []byte(`{"title":`),
	})
}
