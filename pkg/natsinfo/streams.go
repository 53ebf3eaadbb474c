package natsinfo

import (
	"strings"

	nats "github.com/nats-io/nats.go"
)

const ARTICLES_STREAM_ANY_ARTICLE_SUBJECT = "article.*.*"

func ArticlesStream_NewArticleSubject(topic string, title string) string {
	title = strings.ReplaceAll(title, " ", "_")
	result := ARTICLES_STREAM_ANY_ARTICLE_SUBJECT
	result = strings.Replace(result, "*", topic, 1)
	result = strings.Replace(result, "*", title, 1)
	return result
}

var ARTICLES_STREAM_CONFIG = &nats.StreamConfig{
	Name:      "ARTICLES",
	Retention: nats.WorkQueuePolicy,
	Discard:   nats.DiscardOld,
	Subjects:  []string{ARTICLES_STREAM_ANY_ARTICLE_SUBJECT},
}

func ArticlesStream_NewArticleConsumerConfig(queueGroup string) (string, string, []nats.SubOpt, *nats.ConsumerConfig) {
	config := &nats.ConsumerConfig{
		Durable:        queueGroup,
		DeliverSubject: queueGroup + "-deliver",
		DeliverGroup:   queueGroup,
		AckPolicy:      nats.AckExplicitPolicy,
	}
	subOpts := []nats.SubOpt{
		nats.Bind(ARTICLES_STREAM_CONFIG.Name, queueGroup),
		nats.ManualAck(),
	}
	return ARTICLES_STREAM_CONFIG.Name, ARTICLES_STREAM_ANY_ARTICLE_SUBJECT, subOpts, config
}
