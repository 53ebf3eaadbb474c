package worker

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"

	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/ncnews/backend/internal/service"
	"github.com/ncnews/backend/internal/storage"
	"github.com/ncnews/backend/pkg/natsinfo"
	"github.com/ncnews/backend/pkg/sqlutils"
)

type articleSeeder interface {
	GetArticleIDByTitleAndTopic(ctx context.Context, params storage.GetArticleIDByTitleAndTopicParams) (int64, error)
	NewArticle(ctx context.Context, params service.NewArticleParams) (int64, error)
}

// Articles are never created through the HTTP surface. This consumer is
// the seed path: it drains the ARTICLES stream and inserts each article
// together with its referenced topic and author.
type articleConsumerWorker struct {
	js             nats.JetStreamContext
	articleService articleSeeder
}

func (a *articleConsumerWorker) handler(ctx context.Context) func(msg *nats.Msg) {
	return func(msg *nats.Msg) {
		var article natsinfo.SeedArticle

		if err := article.Unmarshal(msg.Data); err != nil {
			log.Printf("Unable deserialize %s article payload. Err:%s", msg.Subject, err)
			_ = msg.Ack()
			return
		}

		articleID, err := a.articleService.GetArticleIDByTitleAndTopic(ctx, storage.GetArticleIDByTitleAndTopicParams{
			Title: article.Title,
			Topic: article.Topic,
		})
		if errors.Is(err, sql.ErrNoRows) {
			articleID, err = a.articleService.NewArticle(ctx, service.NewArticleParams{
				Article: storage.NewArticleParams{
					Title:         article.Title,
					Topic:         article.Topic,
					Author:        article.Author,
					Body:          article.Body,
					CreatedAt:     sqlutils.GetNullableSqlTime(article.CreatedAt),
					Votes:         article.Votes,
					ArticleImgURL: article.ArticleImgURL,
				},
				TopicDescription: article.TopicDescription,
				AuthorName:       article.AuthorName,
				AuthorAvatarURL:  article.AuthorAvatarURL,
			})
			if err != nil {
				log.Printf("Unable seed article Title:%s Topic:%s. Err:%s", article.Title, article.Topic, err)
				return
			}
			log.Printf("Seeded article %d.", articleID)
			_ = msg.Ack()
			return
		} else if err != nil {
			log.Printf("Unexpected database error for Title:%s Topic:%s. Err:%s", article.Title, article.Topic, err)
			return
		}

		log.Printf("Article %d already seeded, skip.", articleID)
		_ = msg.Ack()
	}
}

func (a *articleConsumerWorker) start(ctx context.Context) {
	if _, err := natsinfo.CreateOrUpdateStream(a.js, natsinfo.ARTICLES_STREAM_CONFIG); err != nil {
		log.Panicf("unable set-up nats %s stream. Err:%s", natsinfo.ARTICLES_STREAM_CONFIG.Name, err)
		os.Exit(1)
	}

	queueGroup := "backend-articles-consumer"
	stream, subject, subOpts, config := natsinfo.ArticlesStream_NewArticleConsumerConfig(queueGroup)

	if _, err := natsinfo.CreateOrUpdateConsumer(a.js, stream, config); err != nil {
		log.Panicf("unable set-up nats %s consumer. Err:%s", queueGroup, err)
		os.Exit(1)
	}

	if _, err := a.js.QueueSubscribe(subject, queueGroup, a.handler(ctx), subOpts...); err != nil {
		log.Panicf("unable start nats %s consumer. Err:%s", queueGroup, err)
		os.Exit(1)
	}

	<-ctx.Done()
}

type StartArticleConsumerWorkerParams struct {
	fx.In

	JS             nats.JetStreamContext
	ArticleService *service.ArticleService
}

func StartArticleConsumerWorker(params StartArticleConsumerWorkerParams) {
	worker := &articleConsumerWorker{
		js:             params.JS,
		articleService: params.ArticleService,
	}
	go worker.start(context.Background())
}
