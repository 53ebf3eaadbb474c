package handler

import (
	_ "embed"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/ncnews/backend/pkg/httputils"
)

// The catalog is a hand-maintained document served byte-for-byte, not an
// introspection of the router.
//
//go:embed endpoints.json
var endpointsJSON []byte

type endpointsHandler struct{}

func (hand *endpointsHandler) GetEndpoints(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(endpointsJSON)
}

func (hand *endpointsHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		r.Get("/api", hand.GetEndpoints)
	}
}

var _ httputils.Handler = (*endpointsHandler)(nil)

func NewEndpointsHandler() *endpointsHandler {
	return &endpointsHandler{}
}
