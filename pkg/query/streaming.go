/*
# Module: pkg/query/streaming.go
Streaming and paginated execution for SelectQuery, layered on top of the
synchronous core evaluator.

The core (Parse, SelectQuery.Execute) is a purely synchronous, pull-based
generator: no goroutines, no channels. This file is the ambient
convenience layer that fans a materialized QueryResult out over a
channel, or slices it into pages, for callers — the `sparql query`
command's --stream and --page modes — that want a streaming or
paginated API on top of it. It is
still eager under the hood: streaming here means "deliver incrementally
to the consumer", not "avoid materializing the result table", since the
modifier pipeline already has to sort and dedup the full result before
it knows the right answer.

## Linked Modules
- [executor](./executor.go) - Run
- [query](./query.go) - SelectQuery / QueryResult

## Tags
query, streaming, pagination

## Exports
StreamingExecutor, ResultStream, StreamConfig, PaginatedResult

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#streaming.go> a code:Module ;
    code:name "pkg/query/streaming.go" ;
    code:description "Streaming and paginated execution atop SelectQuery" ;
    code:language "go" ;
    code:layer "query" ;
    code:linksTo <./executor.go>, <./query.go> ;
    code:exports <#StreamingExecutor>, <#ResultStream>, <#StreamConfig>, <#PaginatedResult> ;
    code:tags "query", "streaming", "pagination" .
<!-- End LinkedDoc RDF -->
*/

package query

import (
	"fmt"
	"sync"

	"github.com/lilspikey/mini-sparql/pkg/algebra"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
)

// StreamConfig configures streaming/paginated execution.
type StreamConfig struct {
	PageSize       int
	BufferSize     int
	ReportProgress bool
}

// DefaultStreamConfig returns sensible defaults.
func DefaultStreamConfig() *StreamConfig {
	return &StreamConfig{PageSize: 100, BufferSize: 100}
}

// StreamingExecutor runs queries against source with streaming/pagination.
type StreamingExecutor struct {
	source algebra.TripleSource
	config *StreamConfig
}

// NewStreamingExecutor builds a StreamingExecutor over source.
func NewStreamingExecutor(source algebra.TripleSource, config *StreamConfig) *StreamingExecutor {
	if config == nil {
		config = DefaultStreamConfig()
	}
	if config.PageSize <= 0 {
		config.PageSize = 100
	}
	if config.BufferSize <= 0 {
		config.BufferSize = config.PageSize
	}
	return &StreamingExecutor{source: source, config: config}
}

// ResultStream delivers a QueryResult's rows over a channel.
type ResultStream struct {
	Results    chan rdf.Solution
	Errors     chan error
	Done       chan struct{}
	Variables  []string
	TotalCount int

	mu     sync.Mutex
	count  int
	closed bool
}

// NewResultStream allocates a ResultStream with the given buffer size.
func NewResultStream(bufferSize int, variables []string) *ResultStream {
	return &ResultStream{
		Results:   make(chan rdf.Solution, bufferSize),
		Errors:    make(chan error, 1),
		Done:      make(chan struct{}),
		Variables: variables,
	}
}

// Close shuts the stream down, safe to call more than once.
func (s *ResultStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.Results)
		close(s.Errors)
		close(s.Done)
	}
}

// Count returns the number of rows delivered so far.
func (s *ResultStream) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

func (s *ResultStream) incrementCount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
}

// ProgressCallback reports (current, total) progress during streaming.
type ProgressCallback func(current, total int)

// ExecuteStream runs sq and streams its rows without progress reporting.
func (e *StreamingExecutor) ExecuteStream(sq *SelectQuery) *ResultStream {
	return e.ExecuteStreamWithProgress(sq, nil)
}

// ExecuteStreamWithProgress runs sq, reporting progress through cb if
// e.config.ReportProgress is set.
func (e *StreamingExecutor) ExecuteStreamWithProgress(sq *SelectQuery, cb ProgressCallback) *ResultStream {
	result, err := sq.Execute()

	var variables []string
	if result != nil {
		variables = result.Variables
	}
	stream := NewResultStream(e.config.BufferSize, variables)

	go func() {
		defer stream.Close()
		if err != nil {
			stream.Errors <- err
			return
		}
		total := len(result.Rows)
		stream.TotalCount = total
		for i, row := range result.Rows {
			select {
			case stream.Results <- row:
				stream.incrementCount()
				if cb != nil && e.config.ReportProgress {
					cb(i+1, total)
				}
			case <-stream.Done:
				return
			}
		}
	}()

	return stream
}

// ExecuteStringStream parses text and streams its results.
func (e *StreamingExecutor) ExecuteStringStream(text string) (*ResultStream, error) {
	sq, err := Parse(text, e.source)
	if err != nil {
		return nil, fmt.Errorf("query: parse: %w", err)
	}
	return e.ExecuteStream(sq), nil
}

// ForEach drains the stream, calling fn for every row until the stream
// closes or fn returns an error.
func (s *ResultStream) ForEach(fn func(row rdf.Solution) error) error {
	for row := range s.Results {
		if err := fn(row); err != nil {
			return err
		}
	}
	select {
	case err := <-s.Errors:
		if err != nil {
			return err
		}
	default:
	}
	return nil
}

// Collect gathers every row from the stream into a slice.
func (s *ResultStream) Collect() ([]rdf.Solution, error) {
	var rows []rdf.Solution
	err := s.ForEach(func(row rdf.Solution) error {
		rows = append(rows, row)
		return nil
	})
	return rows, err
}

// CollectPage collects up to limit rows from the stream.
func (s *ResultStream) CollectPage(limit int) ([]rdf.Solution, error) {
	var rows []rdf.Solution
	for len(rows) < limit {
		select {
		case row, ok := <-s.Results:
			if !ok {
				select {
				case err := <-s.Errors:
					if err != nil {
						return rows, err
					}
				default:
				}
				return rows, nil
			}
			rows = append(rows, row)
		case err := <-s.Errors:
			return rows, err
		}
	}
	return rows, nil
}

// PaginatedResult is one page of a SelectQuery's results.
type PaginatedResult struct {
	Rows       []rdf.Solution
	Variables  []string
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
	HasMore    bool
}

// ExecutePaginated re-runs sq's algebra with page-scoped LIMIT/OFFSET,
// plus a second unrestricted pass to compute the total row count.
func (e *StreamingExecutor) ExecutePaginated(sq *SelectQuery, page, pageSize int) (*PaginatedResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = e.config.PageSize
	}

	limit, offset := pageSize, (page-1)*pageSize
	pageQuery := cloneWithPagination(sq, &limit, &offset)
	result, err := pageQuery.Execute()
	if err != nil {
		return nil, err
	}

	countQuery := cloneWithPagination(sq, nil, nil)
	countResult, err := countQuery.Execute()
	if err != nil {
		return nil, err
	}

	total := len(countResult.Rows)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return &PaginatedResult{
		Rows:       result.Rows,
		Variables:  result.Variables,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}, nil
}

// ExecuteStringPaginated parses text and runs ExecutePaginated on it.
func (e *StreamingExecutor) ExecuteStringPaginated(text string, page, pageSize int) (*PaginatedResult, error) {
	sq, err := Parse(text, e.source)
	if err != nil {
		return nil, fmt.Errorf("query: parse: %w", err)
	}
	return e.ExecutePaginated(sq, page, pageSize)
}

func cloneWithPagination(sq *SelectQuery, limit, offset *int) *SelectQuery {
	clone := *sq
	clone.Limit = limit
	clone.Offset = offset
	return &clone
}
