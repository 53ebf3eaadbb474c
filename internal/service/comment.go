package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"

	"github.com/lib/pq"
	"go.uber.org/fx"

	"github.com/ncnews/backend/internal/accessor"
	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/storage"
)

var (
	ErrCommentNotFound = errors.New("Comment not found")
	ErrUserNotFound    = errors.New("User not found")
)

const foreignKeyViolation = "23503"

type CommentService struct {
	queries storage.Querier
}

// GetArticleComments lists the comments of an existing article, newest
// first. A missing parent article is an error; an article with no comments
// is an empty list.
func (s *CommentService) GetArticleComments(ctx context.Context, articleID int64) ([]model.Comment, error) {
	if _, err := s.queries.GetArticleByID(ctx, articleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	rows, err := s.queries.ListArticleComments(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return accessor.CommentsFromRows(rows), nil
}

type AddCommentParams struct {
	ArticleID int64
	Username  string
	Body      string
}

// AddComment inserts a comment after confirming both referenced rows exist.
// The two lookups are independent reads, so they run concurrently on the
// pool; both results are collected before deciding, with the user mismatch
// reported first. The insert itself still races a concurrent article
// delete, which the foreign keys catch (see mapForeignKeyViolation).
func (s *CommentService) AddComment(ctx context.Context, params AddCommentParams) (model.Comment, error) {
	var wg sync.WaitGroup
	var userErr, articleErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, userErr = s.queries.GetUserByUsername(ctx, params.Username)
	}()
	go func() {
		defer wg.Done()
		_, articleErr = s.queries.GetArticleByID(ctx, params.ArticleID)
	}()
	wg.Wait()

	if errors.Is(userErr, sql.ErrNoRows) {
		return model.NilComment, ErrUserNotFound
	}
	if userErr != nil {
		return model.NilComment, userErr
	}
	if errors.Is(articleErr, sql.ErrNoRows) {
		return model.NilComment, ErrArticleNotFound
	}
	if articleErr != nil {
		return model.NilComment, articleErr
	}

	row, err := s.queries.NewComment(ctx, storage.NewCommentParams{
		ArticleID: params.ArticleID,
		Author:    params.Username,
		Body:      params.Body,
	})
	if err != nil {
		return model.NilComment, mapForeignKeyViolation(err)
	}
	return accessor.CommentFromRow(row), nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID int64) error {
	affected, err := s.queries.DeleteComment(ctx, commentID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func mapForeignKeyViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != foreignKeyViolation {
		return err
	}
	if strings.Contains(pqErr.Constraint, "author") {
		return ErrUserNotFound
	}
	return ErrArticleNotFound
}

type NewCommentServiceParams struct {
	fx.In

	DB *sql.DB
}

func NewCommentService(params NewCommentServiceParams) *CommentService {
	return &CommentService{
		queries: storage.New(params.DB),
	}
}
