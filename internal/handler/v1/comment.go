package handler

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/service"
	"github.com/ncnews/backend/pkg/httputils"
)

type commentService interface {
	GetArticleComments(ctx context.Context, articleID int64) ([]model.Comment, error)
	AddComment(ctx context.Context, params service.AddCommentParams) (model.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type commentHandler struct {
	commentService commentService
}

type getCommentsResponse struct {
	Comments []model.Comment `json:"comments"`
}

type commentResponse struct {
	Comment model.Comment `json:"comment"`
}

func (hand *commentHandler) GetArticleComments(w http.ResponseWriter, r *http.Request, params *ArticleURLParams) {
	comments, err := hand.commentService.GetArticleComments(r.Context(), params.ID)
	if err != nil {
		commentErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, &getCommentsResponse{Comments: comments})
}

func (hand *commentHandler) PostArticleComment(w http.ResponseWriter, r *http.Request, params *ArticleURLParams, payload *NewCommentRequest) {
	comment, err := hand.commentService.AddComment(r.Context(), service.AddCommentParams{
		ArticleID: params.ID,
		Username:  payload.Username,
		Body:      payload.Body,
	})
	if err != nil {
		commentErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusCreated, &commentResponse{Comment: comment})
}

func (hand *commentHandler) DeleteComment(w http.ResponseWriter, r *http.Request, params *CommentURLParams) {
	if err := hand.commentService.DeleteComment(r.Context(), params.ID); err != nil {
		commentErrHandler(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

var _ CommentHandler = (*commentHandler)(nil)

type NewCommentHandlerParams struct {
	fx.In

	CommentService *service.CommentService
}

func NewCommentHandler(params NewCommentHandlerParams) *commentParamsWrapperHandler {
	return newCommentParamsWrapper(&commentHandler{
		commentService: params.CommentService,
	})
}
