package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/service"
)

func newCommentRouter(fake *fakeCommentService) http.Handler {
	return newTestRouter(newCommentParamsWrapper(&commentHandler{commentService: fake}))
}

func TestGetArticleCommentsEndpoint(t *testing.T) {
	createdAt := time.Date(2020, 4, 6, 12, 17, 0, 0, time.UTC)
	router := newCommentRouter(&fakeCommentService{
		getArticleComments: func(ctx context.Context, articleID int64) ([]model.Comment, error) {
			require.Equal(t, int64(9), articleID)
			return []model.Comment{
				{CommentID: 16, ArticleID: 9, Author: "butter_bridge", Body: "This is a comment.", Votes: 1, CreatedAt: createdAt},
			}, nil
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/articles/9/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Comments []model.Comment `json:"comments"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Comments, 1)
	require.Equal(t, int64(16), resp.Comments[0].CommentID)
}

func TestGetArticleCommentsEmpty(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{
		getArticleComments: func(ctx context.Context, articleID int64) ([]model.Comment, error) {
			return []model.Comment{}, nil
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/articles/2/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"comments":[]}`, rec.Body.String())
}

func TestGetArticleCommentsMissingArticle(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{
		getArticleComments: func(ctx context.Context, articleID int64) ([]model.Comment, error) {
			return nil, service.ErrArticleNotFound
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/articles/999/comments", "")
	requireMsg(t, rec, http.StatusNotFound, "Article not found")
}

func TestGetArticleCommentsMalformedID(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{})

	rec := doRequest(t, router, http.MethodGet, "/api/articles/not-an-id/comments", "")
	requireMsg(t, rec, http.StatusBadRequest, "Invalid input syntax")
}

func TestPostArticleComment(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{
		addComment: func(ctx context.Context, params service.AddCommentParams) (model.Comment, error) {
			require.Equal(t, int64(1), params.ArticleID)
			require.Equal(t, "butter_bridge", params.Username)
			require.Equal(t, "hi", params.Body)
			return model.Comment{CommentID: 19, ArticleID: 1, Author: "butter_bridge", Body: "hi"}, nil
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/articles/1/comments", `{"username":"butter_bridge","body":"hi"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Comment model.Comment `json:"comment"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, "butter_bridge", resp.Comment.Author)
	require.Equal(t, "hi", resp.Comment.Body)
}

// Unknown payload fields are ignored, not rejected.
func TestPostArticleCommentExtraFields(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{
		addComment: func(ctx context.Context, params service.AddCommentParams) (model.Comment, error) {
			return model.Comment{CommentID: 20, ArticleID: 1, Author: params.Username, Body: params.Body}, nil
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/articles/1/comments",
		`{"username":"butter_bridge","body":"hi","votes":9000,"legs":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestPostArticleCommentMissingFields(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{})

	for _, body := range []string{
		`{}`,
		`{"username":"butter_bridge"}`,
		`{"body":"hi"}`,
		`{"username":"","body":"hi"}`,
	} {
		rec := doRequest(t, router, http.MethodPost, "/api/articles/1/comments", body)
		requireMsg(t, rec, http.StatusBadRequest, "Missing required properties in the request body")
	}
}

func TestPostArticleCommentMalformedID(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{})

	rec := doRequest(t, router, http.MethodPost, "/api/articles/not-an-id/comments", `{"username":"butter_bridge","body":"hi"}`)
	requireMsg(t, rec, http.StatusBadRequest, "Invalid input syntax")
}

func TestPostArticleCommentUnknownUser(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{
		addComment: func(ctx context.Context, params service.AddCommentParams) (model.Comment, error) {
			return model.NilComment, service.ErrUserNotFound
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/articles/1/comments", `{"username":"nobody","body":"hi"}`)
	requireMsg(t, rec, http.StatusNotFound, "User not found")
}

func TestPostArticleCommentUnknownArticle(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{
		addComment: func(ctx context.Context, params service.AddCommentParams) (model.Comment, error) {
			return model.NilComment, service.ErrArticleNotFound
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/articles/999/comments", `{"username":"butter_bridge","body":"hi"}`)
	requireMsg(t, rec, http.StatusNotFound, "Article not found")
}

func TestDeleteCommentEndpoint(t *testing.T) {
	deleted := false
	router := newCommentRouter(&fakeCommentService{
		deleteComment: func(ctx context.Context, commentID int64) error {
			require.Equal(t, int64(1), commentID)
			deleted = true
			return nil
		},
	})

	rec := doRequest(t, router, http.MethodDelete, "/api/comments/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
	require.True(t, deleted)
}

func TestDeleteCommentNotFound(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{
		deleteComment: func(ctx context.Context, commentID int64) error {
			return service.ErrCommentNotFound
		},
	})

	rec := doRequest(t, router, http.MethodDelete, "/api/comments/999", "")
	requireMsg(t, rec, http.StatusNotFound, "Comment not found")
}

func TestDeleteCommentStorageFault(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{
		deleteComment: func(ctx context.Context, commentID int64) error {
			return errors.New("pq: connection reset by peer")
		},
	})

	rec := doRequest(t, router, http.MethodDelete, "/api/comments/1", "")
	requireMsg(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestDeleteCommentMalformedID(t *testing.T) {
	router := newCommentRouter(&fakeCommentService{})

	rec := doRequest(t, router, http.MethodDelete, "/api/comments/not-an-id", "")
	requireMsg(t, rec, http.StatusBadRequest, "Invalid input syntax")
}
