package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/ingest"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/metrics"
	"github.com/nekruzvatanshoev/carlot/pkg/logger"
)

// NewHTTPServer returns a new HTTP server serving cat read-only
func NewHTTPServer(addr string, cat *ingest.Catalog, m *metrics.Registry, log *logger.Logger) *http.Server {
	server := newHTTPServer(cat, log)
	return &http.Server{
		Addr:    addr,
		Handler: server.routes(m),
	}
}

type httpServer struct {
	log     *logger.Logger
	catalog *ingest.Catalog
}

func newHTTPServer(cat *ingest.Catalog, log *logger.Logger) *httpServer {
	if log == nil {
		log = logger.Nop()
	}
	return &httpServer{
		log:     log.With("component", "http"),
		catalog: cat,
	}
}

func (h *httpServer) routes(m *metrics.Registry) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/cars", h.GetCars).Methods(http.MethodGet)
	r.HandleFunc("/sellers", h.GetSellers).Methods(http.MethodGet)
	r.HandleFunc("/sellers/{name}", h.GetSeller).Methods(http.MethodGet)
	if m != nil {
		r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	}
	return r
}
