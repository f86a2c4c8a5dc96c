/*
# Module: pkg/server/server.go
HTTP server for the SPARQL query endpoint.

Provides an HTTP server exposing a SPARQL SELECT query endpoint, a
health check, and cache statistics.

## Linked Modules
- [sparql_handler](./sparql_handler.go) - SPARQL HTTP handler
- [../../internal/store](../../internal/store) - Triple store

## Tags
server, http, api

## Exports
Server, Config, NewServer

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#server.go> a code:Module ;
    code:name "pkg/server/server.go" ;
    code:description "HTTP server for the SPARQL query endpoint" ;
    code:language "go" ;
    code:layer "server" ;
    code:linksTo <./sparql_handler.go>, <../../internal/store> ;
    code:exports <#Server>, <#Config>, <#NewServer> ;
    code:tags "server", "http", "api" .
<!-- End LinkedDoc RDF -->
*/

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lilspikey/mini-sparql/internal/store"
	"github.com/lilspikey/mini-sparql/pkg/cache"
	"github.com/sirupsen/logrus"
)

// Config holds server configuration
type Config struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	EnableCORS      bool
	EnableCache     bool
	CacheMaxEntries int
	CacheTTL        time.Duration
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            8080,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		EnableCORS:      true,
		EnableCache:     true,
		CacheMaxEntries: 1000,
		CacheTTL:        5 * time.Minute,
	}
}

// Server is the HTTP server fronting a triple store's SPARQL endpoint
type Server struct {
	config *Config
	store  *store.TripleStore
	server *http.Server
	cache  *cache.Cache
}

// NewServer creates a new HTTP server over the given triple store
func NewServer(config *Config, s *store.TripleStore) *Server {
	if config == nil {
		config = DefaultConfig()
	}

	srv := &Server{
		config: config,
		store:  s,
	}

	if config.EnableCache {
		srv.cache = cache.NewCache(config.CacheMaxEntries, config.CacheTTL)
	}

	return srv
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	sparqlHandler := NewSPARQLHandler(s.store, s.config.EnableCORS)
	if s.config.EnableCache && s.cache != nil {
		mux.Handle("/sparql", CacheMiddleware(sparqlHandler, s.cache, s.store))
	} else {
		mux.Handle("/sparql", sparqlHandler)
	}

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.config.EnableCache && s.cache != nil {
		mux.HandleFunc("/cache/stats", s.handleCacheStats)
	}

	mux.HandleFunc("/", s.handleRoot)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	logrus.WithFields(logrus.Fields{"component": "server", "addr": addr}).Info("starting mini-sparql server")
	logrus.WithField("endpoint", fmt.Sprintf("http://%s/sparql", addr)).Info("sparql endpoint ready")
	if s.config.EnableCache && s.cache != nil {
		logrus.WithFields(logrus.Fields{
			"maxEntries": s.config.CacheMaxEntries,
			"ttl":        s.config.CacheTTL,
		}).Info("response cache enabled")
	}

	return s.server.ListenAndServe()
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// handleRoot provides API information
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	endpoints := `{
  "name": "mini-sparql API",
  "version": "0.1.0",
  "endpoints": {
    "sparql": {
      "path": "/sparql",
      "methods": ["GET", "POST"],
      "description": "SPARQL SELECT query endpoint",
      "formats": ["json", "csv", "tsv", "xml"]
    },
    "health": {
      "path": "/health",
      "methods": ["GET"],
      "description": "Health check endpoint"
    }
  }
}`

	w.Write([]byte(endpoints))
}

// handleCacheStats provides cache statistics
func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.cache == nil {
		http.Error(w, "Cache not enabled", http.StatusNotFound)
		return
	}

	stats := s.cache.Stats()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := fmt.Sprintf(`{
  "hits": %d,
  "misses": %d,
  "evictions": %d,
  "size": %d,
  "maxSize": %d,
  "totalBytes": %d,
  "hitRate": %.4f
}`, stats.Hits, stats.Misses, stats.Evictions, stats.Size, stats.MaxSize, stats.TotalBytes, stats.HitRate)

	w.Write([]byte(response))
}
