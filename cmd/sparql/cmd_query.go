/*
# Module: cmd/sparql/cmd_query.go
Query command implementation.

Executes a SPARQL SELECT query against a dataset loaded into an
in-memory triple store.

## Linked Modules
- [root](./root.go) - Root command
- [output](./output.go) - Table formatting
- [dataset](./dataset.go) - Dataset loading
- [../../pkg/query](../../pkg/query/query.go) - Query engine

## Tags
cli, command, query, sparql

## Exports
queryCmd

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#cmd_query.go> a code:Module ;

	code:name "cmd/sparql/cmd_query.go" ;
	code:description "Query command implementation" ;
	code:language "go" ;
	code:layer "cli" ;
	code:linksTo <./root.go>, <./output.go>, <./dataset.go>, <../../pkg/query/query.go> ;
	code:exports <#queryCmd> ;
	code:tags "cli", "command", "query", "sparql" .

<!-- End LinkedDoc RDF -->
*/
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lilspikey/mini-sparql/pkg/algebra"
	"github.com/lilspikey/mini-sparql/pkg/cli"
	"github.com/lilspikey/mini-sparql/pkg/query"
	"github.com/lilspikey/mini-sparql/pkg/rdf"
	"github.com/spf13/cobra"
)

var (
	queryDataset  string
	queryFile     string
	queryFormat   string
	queryLimit    int
	queryOutput   string
	queryOffset   int
	queryPageSize int
	queryStream   bool
	queryPage     int
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <query>",
	Short: "Execute a SPARQL SELECT query against a dataset",
	Long: `Execute a SPARQL SELECT query against a dataset loaded into an
in-memory triple store.

Supports streaming and pagination for large result sets:
  --stream     Stream results incrementally (memory efficient)
  --page N     Show specific page of results
  --page-size  Number of results per page (default: 100)
  --offset     Skip first N results
  --limit      Limit total results

Examples:
  # Inline query
  sparql query 'SELECT ?name WHERE { ?s name ?name }'

  # Query from file
  sparql query --file queries/names.sparql

  # Format as JSON
  sparql query 'SELECT ?s WHERE { ?s ?p ?o }' --format json

  # Save to file
  sparql query --file queries/deps.sparql --output results.json

  # Stream large results
  sparql query --stream 'SELECT * WHERE { ?s ?p ?o }'

  # Paginate results
  sparql query --page 1 --page-size 50 'SELECT * WHERE { ?s ?p ?o }'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryDataset, "dataset", "", "Path to dataset file (overrides config)")
	queryCmd.Flags().StringVarP(&queryFile, "file", "f", "", "Read query from file")
	queryCmd.Flags().StringVar(&queryFormat, "format", "table", "Output format: table, json, csv")
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "l", 0, "Limit number of results (0 = no limit)")
	queryCmd.Flags().StringVarP(&queryOutput, "output", "o", "", "Write results to file")
	queryCmd.Flags().IntVar(&queryOffset, "offset", 0, "Skip first N results")
	queryCmd.Flags().IntVar(&queryPageSize, "page-size", 100, "Number of results per page")
	queryCmd.Flags().BoolVar(&queryStream, "stream", false, "Stream results incrementally")
	queryCmd.Flags().IntVar(&queryPage, "page", 0, "Show specific page of results (1-indexed)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	out := cli.NewOutputFormatter(quiet, verbose, noColor)

	var queryString string
	if queryFile != "" {
		data, err := os.ReadFile(queryFile)
		if err != nil {
			return fmt.Errorf("failed to read query file: %w", err)
		}
		queryString = string(data)
	} else if len(args) > 0 {
		queryString = args[0]
	} else {
		return fmt.Errorf("query string or --file required")
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(currentDir, ".sparqlrc", "config.yaml")
	config, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	datasetPath := resolveDatasetPath(currentDir, queryDataset, config)
	out.Debug("Loading dataset from %s...", datasetPath)

	s, count, err := loadDataset(datasetPath)
	if err != nil {
		return err
	}
	out.Debug("Dataset loaded: %d triples", count)

	if queryStream {
		return runStreamingQuery(s, queryString, out)
	} else if queryPage > 0 {
		return runPaginatedQuery(s, queryString, out)
	}
	return runNormalQuery(s, queryString, out)
}

// runNormalQuery executes a query normally (all results at once)
func runNormalQuery(s algebra.TripleSource, queryString string, out *cli.OutputFormatter) error {
	parsedQuery, err := query.Parse(queryString, s)
	if err != nil {
		return fmt.Errorf("query parse failed: %w", err)
	}

	if queryLimit > 0 && parsedQuery.Limit == nil {
		limit := queryLimit
		parsedQuery.Limit = &limit
	}
	if queryOffset > 0 && parsedQuery.Offset == nil {
		offset := queryOffset
		parsedQuery.Offset = &offset
	}

	result, err := parsedQuery.Execute()
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	var output string
	switch queryFormat {
	case "json":
		output, err = formatJSON(result)
	case "csv":
		output, err = formatCSVResult(result)
	case "table":
		output, err = formatTable(result)
	default:
		return fmt.Errorf("unsupported format: %s", queryFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}

	return writeQueryOutput(output, out)
}

// runStreamingQuery executes a query with streaming output
func runStreamingQuery(s algebra.TripleSource, queryString string, out *cli.OutputFormatter) error {
	config := &query.StreamConfig{
		PageSize:       queryPageSize,
		BufferSize:     queryPageSize,
		ReportProgress: verbose,
	}

	streamExecutor := query.NewStreamingExecutor(s, config)

	var progressCallback query.ProgressCallback
	if verbose {
		progressCallback = func(current, total int) {
			if current%1000 == 0 || current == total {
				fmt.Fprintf(os.Stderr, "\rStreaming: %d/%d results...", current, total)
			}
		}
	}

	parsedQuery, err := query.Parse(queryString, s)
	if err != nil {
		return fmt.Errorf("query parse failed: %w", err)
	}

	stream := streamExecutor.ExecuteStreamWithProgress(parsedQuery, progressCallback)

	fmt.Println("Streaming results...")
	if len(stream.Variables) > 0 {
		fmt.Println("Variables:", stream.Variables)
	}
	fmt.Println()

	count := 0
	err = stream.ForEach(func(row rdf.Solution) error {
		count++
		m := rowToMap(row, stream.Variables)
		switch queryFormat {
		case "json":
			data, jsonErr := json.Marshal(m)
			if jsonErr != nil {
				return jsonErr
			}
			fmt.Println(string(data))
		case "csv":
			values := make([]string, len(stream.Variables))
			for i, v := range stream.Variables {
				values[i] = m[v]
			}
			fmt.Println(strings.Join(values, ","))
		default:
			fmt.Printf("%d. %v\n", count, m)
		}
		return nil
	})

	if verbose {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return fmt.Errorf("streaming failed: %w", err)
	}

	fmt.Printf("\nTotal: %d results streamed\n", count)
	return nil
}

// runPaginatedQuery executes a query with pagination
func runPaginatedQuery(s algebra.TripleSource, queryString string, out *cli.OutputFormatter) error {
	config := &query.StreamConfig{PageSize: queryPageSize}
	streamExecutor := query.NewStreamingExecutor(s, config)

	parsedQuery, err := query.Parse(queryString, s)
	if err != nil {
		return fmt.Errorf("query parse failed: %w", err)
	}

	paginatedResult, err := streamExecutor.ExecutePaginated(parsedQuery, queryPage, queryPageSize)
	if err != nil {
		return fmt.Errorf("paginated query failed: %w", err)
	}

	result := &query.QueryResult{
		Variables: paginatedResult.Variables,
		Rows:      paginatedResult.Rows,
	}

	var output string
	switch queryFormat {
	case "json":
		paginationData := map[string]interface{}{
			"page":       paginatedResult.Page,
			"pageSize":   paginatedResult.PageSize,
			"totalCount": paginatedResult.TotalCount,
			"totalPages": paginatedResult.TotalPages,
			"hasMore":    paginatedResult.HasMore,
			"variables":  paginatedResult.Variables,
			"rows":       rowsToMaps(result),
		}
		data, jsonErr := json.MarshalIndent(paginationData, "", "  ")
		if jsonErr != nil {
			return fmt.Errorf("failed to marshal JSON: %w", jsonErr)
		}
		output = string(data)
	case "csv":
		output, err = formatCSVResult(result)
	case "table":
		output, err = formatTable(result)
	default:
		return fmt.Errorf("unsupported format: %s", queryFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}

	if queryOutput != "" {
		if err := os.WriteFile(queryOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		out.Success("Results written to %s", queryOutput)
	} else {
		fmt.Println(output)
		if queryFormat != "json" {
			fmt.Printf("\nPage %d of %d (showing %d of %d total results)\n",
				paginatedResult.Page, paginatedResult.TotalPages,
				len(paginatedResult.Rows), paginatedResult.TotalCount)
			if paginatedResult.HasMore {
				fmt.Printf("Use --page %d to see more results\n", paginatedResult.Page+1)
			}
		}
	}

	return nil
}

func writeQueryOutput(output string, out *cli.OutputFormatter) error {
	if queryOutput != "" {
		if err := os.WriteFile(queryOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		out.Success("Results written to %s", queryOutput)
		return nil
	}
	fmt.Println(output)
	return nil
}

// formatJSON formats query results as JSON
func formatJSON(result *query.QueryResult) (string, error) {
	data, err := json.MarshalIndent(rowsToMaps(result), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// rowsToMaps renders a QueryResult's rows as plain string maps for JSON output.
func rowsToMaps(result *query.QueryResult) []map[string]string {
	rows := make([]map[string]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, rowToMap(row, result.Variables))
	}
	return rows
}

// rowToMap renders a single solution as a plain string map over variables.
func rowToMap(row rdf.Solution, variables []string) map[string]string {
	m := make(map[string]string, len(variables))
	for _, v := range variables {
		if term, ok := row.Get(v); ok {
			m[v] = term.String()
		}
	}
	return m
}

// formatCSVResult formats query results as CSV
func formatCSVResult(result *query.QueryResult) (string, error) {
	if len(result.Rows) == 0 {
		return "", nil
	}

	var output [][]string
	output = append(output, result.Variables)

	for _, row := range result.Rows {
		record := make([]string, len(result.Variables))
		for i, v := range result.Variables {
			if term, ok := row.Get(v); ok {
				record[i] = term.String()
			}
		}
		output = append(output, record)
	}

	var csvData strings.Builder
	writer := csv.NewWriter(&csvData)
	if err := writer.WriteAll(output); err != nil {
		return "", err
	}
	writer.Flush()

	return csvData.String(), writer.Error()
}
