package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
)

//go:embed static
var staticFiles embed.FS

func (s *Server) routes() http.Handler {
	router := mux.NewRouter()

	router.Use(s.loggingMiddleware)
	router.Use(s.recoverMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/check-proxy", s.handleCheckProxy).Methods(http.MethodPost)
	api.HandleFunc("/check-proxies", s.handleCheckProxies).Methods(http.MethodPost)
	api.HandleFunc("/results", s.handleGetResults).Methods(http.MethodGet)
	api.HandleFunc("/results", s.handleClearResults).Methods(http.MethodDelete)
	api.HandleFunc("/results/working", s.handleGetWorkingResults).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.handleGetStats).Methods(http.MethodGet)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	if s.metrics != nil {
		router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The static tree is compiled in; a failure here is a build defect.
		panic(err)
	}
	router.PathPrefix("/").Handler(http.FileServer(http.FS(staticFS))).Methods(http.MethodGet)

	return router
}
