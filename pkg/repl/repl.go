/*
# Module: pkg/repl/repl.go
Interactive REPL for SPARQL queries over an in-memory triple store.

Provides an interactive Read-Eval-Print Loop for exploring an RDF
dataset with SPARQL SELECT queries, syntax highlighting, and tab
completion.

## Linked Modules
- [../query](../query/query.go) - Query parsing and execution
- [../../internal/store](../../internal/store) - Triple store

## Tags
repl, interactive, cli, sparql

## Exports
REPL, Config, New

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#repl.go> a code:Module ;
    code:name "pkg/repl/repl.go" ;
    code:description "Interactive REPL for SPARQL queries" ;
    code:language "go" ;
    code:layer "repl" ;
    code:linksTo <../query/query.go>, <../../internal/store> ;
    code:exports <#REPL>, <#Config>, <#New> ;
    code:tags "repl", "interactive", "cli", "sparql" .
<!-- End LinkedDoc RDF -->
*/

package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lilspikey/mini-sparql/internal/store"
	"github.com/lilspikey/mini-sparql/pkg/history"
	"github.com/lilspikey/mini-sparql/pkg/query"
)

// Config holds REPL configuration
type Config struct {
	HistoryFile string
	HistoryDB   string // path to the bbolt saved-query/recent-history store
	Prompt      string
	NoColor     bool
	PageSize    int  // Number of results per page (default: 20)
	Paginate    bool // Enable interactive pagination (default: true)
}

// REPL is the interactive Read-Eval-Print Loop
type REPL struct {
	config      *Config
	store       *store.TripleStore
	hist        *history.Store // nil if no history DB was configured
	rl          *readline.Instance
	format      string
	history     []string
	completer   *Completer
	highlighter *Highlighter
}

// New creates a new REPL instance over the given triple store
func New(s *store.TripleStore, config *Config) (*REPL, error) {
	if config == nil {
		config = &Config{
			HistoryFile: filepath.Join(os.TempDir(), ".minisparql_history"),
			Prompt:      "sparql> ",
			NoColor:     false,
			PageSize:    20,
			Paginate:    true,
		}
	}
	if config.PageSize <= 0 {
		config.PageSize = 20
	}

	rlConfig := &readline.Config{
		Prompt:          config.Prompt,
		HistoryFile:     config.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	completer := NewCompleter(s)
	highlighter := NewHighlighter(config.NoColor)

	var hist *history.Store
	if config.HistoryDB != "" {
		hist, err = history.NewStore(config.HistoryDB)
		if err != nil {
			return nil, fmt.Errorf("failed to open history store: %w", err)
		}
	}

	repl := &REPL{
		config:      config,
		store:       s,
		hist:        hist,
		rl:          rl,
		format:      "table",
		history:     make([]string, 0),
		completer:   completer,
		highlighter: highlighter,
	}

	repl.setupAutocomplete()

	return repl, nil
}

// Run starts the REPL loop
func (r *REPL) Run() error {
	defer r.rl.Close()
	if r.hist != nil {
		defer r.hist.Close()
	}

	r.printWelcome()

	var multilineQuery strings.Builder
	inMultiline := false

	for {
		var line string
		var err error

		if inMultiline {
			r.rl.SetPrompt("      -> ")
			line, err = r.rl.Readline()
		} else {
			r.rl.SetPrompt(r.config.Prompt)
			line, err = r.rl.Readline()
		}

		if err != nil {
			if err == readline.ErrInterrupt {
				if inMultiline {
					multilineQuery.Reset()
					inMultiline = false
					continue
				}
				if len(line) == 0 {
					break
				}
			} else if err == io.EOF {
				break
			}
			continue
		}

		line = strings.TrimSpace(line)

		if line == "" {
			if inMultiline {
				queryStr := multilineQuery.String()
				multilineQuery.Reset()
				inMultiline = false
				r.rl.SetPrompt(r.config.Prompt)
				r.executeQuery(queryStr)
			}
			continue
		}

		if strings.HasPrefix(line, ".") {
			if inMultiline {
				r.printError("Cannot use commands in multiline mode. Press Enter on empty line to execute query.")
				continue
			}
			if err := r.handleCommand(line); err != nil {
				if err == io.EOF {
					break
				}
				r.printError(err.Error())
			}
			continue
		}

		if !inMultiline && strings.HasPrefix(strings.ToUpper(line), "SELECT") {
			inMultiline = true
			multilineQuery.WriteString(line)
			multilineQuery.WriteString("\n")
			continue
		}

		if inMultiline {
			multilineQuery.WriteString(line)
			multilineQuery.WriteString("\n")
			continue
		}

		r.executeQuery(line)
	}

	r.printGoodbye()
	return nil
}

// executeQuery executes a SPARQL SELECT query and displays results
func (r *REPL) executeQuery(queryStr string) {
	queryStr = strings.TrimSpace(queryStr)
	if queryStr == "" {
		return
	}

	r.history = append(r.history, queryStr)
	if r.hist != nil {
		if err := r.hist.AddRecent(queryStr); err != nil {
			r.printError(fmt.Sprintf("failed to record history: %v", err))
		}
	}

	start := time.Now()
	result, err := query.Run(queryStr, r.store)
	duration := time.Since(start)

	if err != nil {
		r.printError(fmt.Sprintf("Query error: %v", err))
		return
	}

	if r.config.Paginate && result != nil && len(result.Rows) > r.config.PageSize {
		r.displayPaginatedResults(result, duration)
	} else {
		if err := r.formatResult(result); err != nil {
			r.printError(fmt.Sprintf("Format error: %v", err))
			return
		}

		r.printInfo(fmt.Sprintf("Query executed in %v", duration))
		if result != nil {
			r.printInfo(fmt.Sprintf("Returned %d results", len(result.Rows)))
		}
	}
}

// displayPaginatedResults displays results with interactive pagination
func (r *REPL) displayPaginatedResults(result *query.QueryResult, duration time.Duration) {
	if result == nil || len(result.Rows) == 0 {
		r.printInfo("No results")
		return
	}

	totalResults := len(result.Rows)
	pageSize := r.config.PageSize
	totalPages := (totalResults + pageSize - 1) / pageSize
	currentPage := 0

	for {
		start := currentPage * pageSize
		end := start + pageSize
		if end > totalResults {
			end = totalResults
		}

		pageResult := &query.QueryResult{
			Variables: result.Variables,
			Rows:      result.Rows[start:end],
		}

		fmt.Print("\033[H\033[2J")
		if err := r.formatResult(pageResult); err != nil {
			r.printError(fmt.Sprintf("Format error: %v", err))
			return
		}

		fmt.Println()
		r.printInfo(fmt.Sprintf("Results %d-%d of %d (Page %d/%d)", start+1, end, totalResults, currentPage+1, totalPages))
		r.printInfo(fmt.Sprintf("Query executed in %v", duration))

		if totalPages == 1 {
			return
		}

		if r.config.NoColor {
			fmt.Print("\n[n]ext  [p]rev  [f]irst  [l]ast  [g]oto  [q]uit: ")
		} else {
			cyan := color.New(color.FgCyan)
			cyan.Print("\n[n]ext  [p]rev  [f]irst  [l]ast  [g]oto  [q]uit: ")
		}

		line, err := r.rl.Readline()
		if err != nil {
			return
		}

		input := strings.TrimSpace(strings.ToLower(line))
		switch input {
		case "n", "next", "":
			if currentPage < totalPages-1 {
				currentPage++
			}
		case "p", "prev", "previous":
			if currentPage > 0 {
				currentPage--
			}
		case "f", "first":
			currentPage = 0
		case "l", "last":
			currentPage = totalPages - 1
		case "q", "quit", "exit":
			return
		default:
			if strings.HasPrefix(input, "g") {
				pageStr := strings.TrimPrefix(input, "g")
				pageStr = strings.TrimSpace(pageStr)
				if pageNum, parseErr := parsePageNumber(pageStr); parseErr == nil {
					if pageNum >= 1 && pageNum <= totalPages {
						currentPage = pageNum - 1
					}
				}
			} else if pageNum, parseErr := parsePageNumber(input); parseErr == nil {
				if pageNum >= 1 && pageNum <= totalPages {
					currentPage = pageNum - 1
				}
			}
		}
	}
}

// parsePageNumber attempts to parse a page number from a string
func parsePageNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}
	var pageNum int
	_, err := fmt.Sscanf(s, "%d", &pageNum)
	return pageNum, err
}

// setupAutocomplete configures tab completion
func (r *REPL) setupAutocomplete() {
	r.rl.Config.AutoComplete = r.completer.GetAutoCompleteFunc()
}

// printWelcome displays the welcome message
func (r *REPL) printWelcome() {
	if r.config.NoColor {
		fmt.Println("mini-sparql Interactive REPL")
		fmt.Println("Type .help for commands or enter SPARQL SELECT queries")
		fmt.Printf("Loaded store with %d triples\n", r.store.Count())
		fmt.Println()
		fmt.Println("Features:")
		fmt.Println("  - Tab completion for commands, keywords, and predicates")
		fmt.Println("  - Multi-line query editing")
		fmt.Println("  - Query history with Up/Down arrows and Ctrl+R search")
		fmt.Println("  - Syntax highlighting")
		fmt.Println()
	} else {
		cyan := color.New(color.FgCyan, color.Bold)
		cyan.Println("mini-sparql Interactive REPL")
		fmt.Println("Type .help for commands or enter SPARQL SELECT queries")
		fmt.Printf("Loaded store with %d triples\n", r.store.Count())
		fmt.Println()
		green := color.New(color.FgGreen)
		green.Println("Features:")
		fmt.Println("  - Tab completion for commands, keywords, and predicates")
		fmt.Println("  - Multi-line query editing")
		fmt.Println("  - Query history with Up/Down arrows and Ctrl+R search")
		fmt.Println("  - Syntax highlighting")
		fmt.Println()
	}
}

// printGoodbye displays the goodbye message
func (r *REPL) printGoodbye() {
	fmt.Println("\nGoodbye!")
}

// printError displays an error message
func (r *REPL) printError(msg string) {
	if r.config.NoColor {
		fmt.Fprintf(r.rl.Stderr(), "Error: %s\n", msg)
	} else {
		red := color.New(color.FgRed)
		red.Fprintf(r.rl.Stderr(), "Error: %s\n", msg)
	}
}

// printInfo displays an info message
func (r *REPL) printInfo(msg string) {
	if r.config.NoColor {
		fmt.Println(msg)
	} else {
		cyan := color.New(color.FgCyan)
		cyan.Println(msg)
	}
}

// printSuccess displays a success message
func (r *REPL) printSuccess(msg string) {
	if r.config.NoColor {
		fmt.Println(msg)
	} else {
		green := color.New(color.FgGreen)
		green.Println(msg)
	}
}
