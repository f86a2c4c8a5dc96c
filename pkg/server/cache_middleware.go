/*
# Module: pkg/server/cache_middleware.go
HTTP response caching middleware.

Provides caching middleware for HTTP handlers with LRU eviction.
Invalidation is wholesale: the cache key includes the triple store's
generation counter, so a mutation invalidates every previously cached
response implicitly rather than by tracking per-query dependencies.

## Linked Modules
- [../cache](../cache/cache.go) - Cache implementation
- [../../internal/store](../../internal/store) - Triple store generation counter

## Tags
server, cache, middleware, http

## Exports
CacheMiddleware, responseWriter

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#cache_middleware.go> a code:Module ;
    code:name "pkg/server/cache_middleware.go" ;
    code:description "HTTP response caching middleware" ;
    code:language "go" ;
    code:layer "server" ;
    code:linksTo <../cache/cache.go>, <../../internal/store> ;
    code:exports <#CacheMiddleware>, <#responseWriter> ;
    code:tags "server", "cache", "middleware", "http" .
<!-- End LinkedDoc RDF -->
*/

package server

import (
	"bytes"
	"io"
	"net/http"

	"github.com/lilspikey/mini-sparql/internal/store"
	"github.com/lilspikey/mini-sparql/pkg/cache"
)

// responseWriter captures the response for caching
type responseWriter struct {
	http.ResponseWriter
	body       *bytes.Buffer
	statusCode int
	headers    http.Header
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		body:           &bytes.Buffer{},
		statusCode:     http.StatusOK,
		headers:        make(http.Header),
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.body.Write(b)
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Header() http.Header {
	return rw.ResponseWriter.Header()
}

// CacheMiddleware wraps an HTTP handler with caching support. s's
// generation counter is folded into the cache key so that any store
// mutation invalidates prior entries without an explicit Clear.
func CacheMiddleware(next http.Handler, c *cache.Cache, s *store.TripleStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		queryText := r.URL.Query().Get("query")
		if r.Method == http.MethodPost {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))
			queryText = string(body)
		}
		cacheKey := cache.GenerateSPARQLKey(r.Method, r.URL.String(), queryText, s.Generation())

		if cached, found := c.Get(cacheKey); found {
			cachedResp := cached.(map[string]interface{})

			if headers, ok := cachedResp["headers"].(http.Header); ok {
				for key, values := range headers {
					for _, value := range values {
						w.Header().Add(key, value)
					}
				}
			}

			w.Header().Set("X-Cache", "HIT")

			if statusCode, ok := cachedResp["statusCode"].(int); ok {
				w.WriteHeader(statusCode)
			}

			if body, ok := cachedResp["body"].([]byte); ok {
				w.Write(body)
			}
			return
		}

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		if rw.statusCode == http.StatusOK {
			cachedResp := map[string]interface{}{
				"statusCode": rw.statusCode,
				"headers":    rw.Header().Clone(),
				"body":       rw.body.Bytes(),
			}

			c.Set(cacheKey, cachedResp, int64(rw.body.Len()))

			w.Header().Set("X-Cache", "MISS")
		}
	})
}
