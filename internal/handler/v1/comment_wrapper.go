package handler

import (
	"errors"
	"log"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/ncnews/backend/internal/service"
	"github.com/ncnews/backend/pkg/httputils"
)

var ErrMissingRequiredProperties = errors.New("Missing required properties in the request body")

type CommentURLParams struct {
	ID int64
}

// NewCommentRequest accepts unknown extra fields silently; only username
// and body are read, and both must be present and non-empty.
type NewCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

func (p *NewCommentRequest) Bind(r *http.Request) error {
	if p.Username == "" || p.Body == "" {
		return ErrMissingRequiredProperties
	}
	return nil
}

type CommentHandler interface {
	GetArticleComments(w http.ResponseWriter, r *http.Request, params *ArticleURLParams)
	PostArticleComment(w http.ResponseWriter, r *http.Request, params *ArticleURLParams, payload *NewCommentRequest)
	DeleteComment(w http.ResponseWriter, r *http.Request, params *CommentURLParams)
}

type commentParamsWrapperHandler struct {
	handler CommentHandler
}

func (h *commentParamsWrapperHandler) GetArticleComments(w http.ResponseWriter, r *http.Request) {
	id, err := idURLParam(r, "article_id")
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.handler.GetArticleComments(w, r, &ArticleURLParams{ID: id})
}

func (h *commentParamsWrapperHandler) PostArticleComment(w http.ResponseWriter, r *http.Request) {
	// Payload validation outranks the id check: a body with missing fields
	// is reported even when the article id is malformed.
	payload := &NewCommentRequest{}
	if err := render.Bind(r, payload); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, ErrMissingRequiredProperties.Error())
		return
	}

	id, err := idURLParam(r, "article_id")
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.handler.PostArticleComment(w, r, &ArticleURLParams{ID: id}, payload)
}

func (h *commentParamsWrapperHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := idURLParam(r, "comment_id")
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.handler.DeleteComment(w, r, &CommentURLParams{ID: id})
}

func (h *commentParamsWrapperHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		r.Get("/api/articles/{article_id}/comments", h.GetArticleComments)
		r.Post("/api/articles/{article_id}/comments", h.PostArticleComment)
		r.Delete("/api/comments/{comment_id}", h.DeleteComment)
	}
}

var _ httputils.Handler = (*commentParamsWrapperHandler)(nil)

func newCommentParamsWrapper(handler CommentHandler) *commentParamsWrapperHandler {
	return &commentParamsWrapperHandler{
		handler: handler,
	}
}

func commentErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrArticleNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("Unexpected comment handler error. Err:%s", err)
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, internalServerErrorMsg)
	}
}
