package natsinfo

import (
	"encoding/json"
	"time"

	"github.com/ncnews/backend/pkg/dateutils"
)

// SeedArticle is the payload a seed producer publishes to hand an article
// over to the backend. Topic and author rows referenced by the article ride
// along so the consumer can satisfy the foreign keys.
type SeedArticle struct {
	Title            string
	Topic            string
	TopicDescription string
	Author           string
	AuthorName       string
	AuthorAvatarURL  string
	Body             string
	CreatedAt        time.Time
	Votes            int
	ArticleImgURL    string
}

type seedArticleDTO struct {
	Title            string `json:"title"`
	Topic            string `json:"topic"`
	TopicDescription string `json:"topic_description"`
	Author           string `json:"author"`
	AuthorName       string `json:"author_name"`
	AuthorAvatarURL  string `json:"author_avatar_url"`
	Body             string `json:"body"`
	CreatedAt        string `json:"created_at,omitempty"`
	Votes            int    `json:"votes"`
	ArticleImgURL    string `json:"article_img_url"`
}

func (a *SeedArticle) Marshal() ([]byte, error) {
	dto := &seedArticleDTO{
		Title:            a.Title,
		Topic:            a.Topic,
		TopicDescription: a.TopicDescription,
		Author:           a.Author,
		AuthorName:       a.AuthorName,
		AuthorAvatarURL:  a.AuthorAvatarURL,
		Body:             a.Body,
		Votes:            a.Votes,
		ArticleImgURL:    a.ArticleImgURL,
	}
	if !a.CreatedAt.IsZero() {
		dto.CreatedAt = dateutils.ToString(a.CreatedAt)
	}
	return json.Marshal(dto)
}

func (a *SeedArticle) Unmarshal(data []byte) error {
	var dto seedArticleDTO

	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	a.Title = dto.Title
	a.Topic = dto.Topic
	a.TopicDescription = dto.TopicDescription
	a.Author = dto.Author
	a.AuthorName = dto.AuthorName
	a.AuthorAvatarURL = dto.AuthorAvatarURL
	a.Body = dto.Body
	a.Votes = dto.Votes
	a.ArticleImgURL = dto.ArticleImgURL

	// created_at is optional on the wire, the store defaults it to now().
	if dto.CreatedAt == "" {
		a.CreatedAt = time.Time{}
		return nil
	}

	createdAt, err := dateutils.ParseString(dto.CreatedAt)
	if err != nil {
		return err
	}
	a.CreatedAt = createdAt

	return nil
}
