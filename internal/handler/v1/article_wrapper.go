package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/ncnews/backend/internal/service"
	"github.com/ncnews/backend/pkg/httputils"
)

const TOPIC_QUERY_PARAM_NAME = "topic"

// ErrInvalidInputSyntax covers every malformed path identifier. It is
// raised before a query is issued so a bad id never reaches the store.
var ErrInvalidInputSyntax = errors.New("Invalid input syntax")

var ErrInvalidIncVotes = errors.New("Invalid or missing inc_votes property in the request body")

// internalServerErrorMsg is the only thing a client sees for an
// unanticipated failure; the underlying error goes to the log.
const internalServerErrorMsg = "Internal server error"

type GetArticlesQueryParams struct {
	Topic string
}

type ArticleURLParams struct {
	ID int64
}

// UpdateVotesRequest keeps inc_votes as a pointer: an explicit 0 is a
// legitimate no-op delta and only an absent or non-numeric value is
// rejected.
type UpdateVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

func (p *UpdateVotesRequest) Bind(r *http.Request) error {
	if p.IncVotes == nil {
		return ErrInvalidIncVotes
	}
	return nil
}

type ArticleHandler interface {
	GetArticles(w http.ResponseWriter, r *http.Request, queryParams *GetArticlesQueryParams)
	GetArticleByID(w http.ResponseWriter, r *http.Request, params *ArticleURLParams)
	PatchArticleVotes(w http.ResponseWriter, r *http.Request, params *ArticleURLParams, payload *UpdateVotesRequest)
}

type articleParamsWrapperHandler struct {
	handler ArticleHandler
}

func idURLParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, ErrInvalidInputSyntax
	}
	return id, nil
}

func (h *articleParamsWrapperHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	h.handler.GetArticles(w, r, &GetArticlesQueryParams{
		Topic: r.URL.Query().Get(TOPIC_QUERY_PARAM_NAME),
	})
}

func (h *articleParamsWrapperHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	id, err := idURLParam(r, "article_id")
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.handler.GetArticleByID(w, r, &ArticleURLParams{ID: id})
}

func (h *articleParamsWrapperHandler) PatchArticleVotes(w http.ResponseWriter, r *http.Request) {
	id, err := idURLParam(r, "article_id")
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	payload := &UpdateVotesRequest{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, ErrInvalidIncVotes.Error())
		return
	}

	h.handler.PatchArticleVotes(w, r, &ArticleURLParams{ID: id}, payload)
}

func (h *articleParamsWrapperHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		r.Get("/api/articles", h.GetArticles)
		r.Get("/api/articles/{article_id}", h.GetArticleByID)
		r.Patch("/api/articles/{article_id}", h.PatchArticleVotes)
	}
}

var _ httputils.Handler = (*articleParamsWrapperHandler)(nil)

func newArticleParamsWrapper(handler ArticleHandler) *articleParamsWrapperHandler {
	return &articleParamsWrapperHandler{
		handler: handler,
	}
}

func articleErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrArticleNotFound),
		errors.Is(err, service.ErrTopicNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("Unexpected article handler error. Err:%s", err)
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, internalServerErrorMsg)
	}
}
