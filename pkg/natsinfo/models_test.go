package natsinfo

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSeedArticleRoundTrip(t *testing.T) {
	article := SeedArticle{
		Title:            "Seafood substitutions are increasing",
		Topic:            "cooking",
		TopicDescription: "Hey good looking, what you got cooking?",
		Author:           "weegembump",
		AuthorName:       "Gemma Bump",
		AuthorAvatarURL:  "https://example.com/weegembump.jpg",
		Body:             "Text from the article..",
		CreatedAt:        time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC),
		Votes:            100,
		ArticleImgURL:    "https://example.com/seafood.jpg",
	}

	data, err := article.Marshal()
	require.NoError(t, err)

	var decoded SeedArticle
	require.NoError(t, decoded.Unmarshal(data))
	require.Equal(t, article, decoded)
}

// created_at is optional on the wire: a zero time is omitted by the
// producer and comes back as a zero time on the consumer side.
func TestSeedArticleOmitsZeroCreatedAt(t *testing.T) {
	article := SeedArticle{
		Title:  "Running a Node App",
		Topic:  "coding",
		Author: "jessjelly",
	}

	data, err := article.Marshal()
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &wire))
	require.NotContains(t, wire, "created_at")

	var decoded SeedArticle
	require.NoError(t, decoded.Unmarshal(data))
	require.True(t, decoded.CreatedAt.IsZero())
}

func TestSeedArticleUnmarshalBadTimestamp(t *testing.T) {
	var decoded SeedArticle
	err := decoded.Unmarshal([]byte(`{"title":"t","topic":"coding","created_at":"yesterday"}`))
	require.Error(t, err)
}

func TestArticlesStreamNewArticleSubject(t *testing.T) {
	subject := ArticlesStream_NewArticleSubject("cooking", "Seafood substitutions are increasing")
	require.Equal(t, "article.cooking.Seafood_substitutions_are_increasing", subject)
}
