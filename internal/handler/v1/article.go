package handler

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/service"
	"github.com/ncnews/backend/pkg/httputils"
)

type articleService interface {
	GetArticleByID(ctx context.Context, id int64) (model.Article, error)
	GetArticles(ctx context.Context, topic string) ([]model.ArticleSummary, error)
	UpdateArticleVotes(ctx context.Context, id int64, incVotes int) (model.Article, error)
}

type articleHandler struct {
	articleService articleService
}

type getArticlesResponse struct {
	Articles []model.ArticleSummary `json:"articles"`
}

type topicHasNoArticlesResponse struct {
	Msg string `json:"msg"`
}

type getArticleResponse struct {
	Article model.Article `json:"article"`
}

func (hand *articleHandler) GetArticles(w http.ResponseWriter, r *http.Request, queryParams *GetArticlesQueryParams) {
	articles, err := hand.articleService.GetArticles(r.Context(), queryParams.Topic)
	if err != nil {
		articleErrHandler(w, err)
		return
	}

	// A known topic with no articles is a success, not an empty list the
	// caller could mistake for a bad filter.
	if queryParams.Topic != "" && len(articles) == 0 {
		httputils.WriteJSONResponse(w, http.StatusOK, &topicHasNoArticlesResponse{
			Msg: "Topic has no articles",
		})
		return
	}

	httputils.WriteJSONResponse(w, http.StatusOK, &getArticlesResponse{Articles: articles})
}

func (hand *articleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request, params *ArticleURLParams) {
	article, err := hand.articleService.GetArticleByID(r.Context(), params.ID)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, &getArticleResponse{Article: article})
}

func (hand *articleHandler) PatchArticleVotes(w http.ResponseWriter, r *http.Request, params *ArticleURLParams, payload *UpdateVotesRequest) {
	article, err := hand.articleService.UpdateArticleVotes(r.Context(), params.ID, *payload.IncVotes)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, &getArticleResponse{Article: article})
}

var _ ArticleHandler = (*articleHandler)(nil)

type NewArticleHandlerParams struct {
	fx.In

	ArticleService *service.ArticleService
}

func NewArticleHandler(params NewArticleHandlerParams) *articleParamsWrapperHandler {
	return newArticleParamsWrapper(&articleHandler{
		articleService: params.ArticleService,
	})
}
