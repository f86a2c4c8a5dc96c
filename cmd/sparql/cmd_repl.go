/*
# Module: cmd/sparql/cmd_repl.go
CLI command for the interactive REPL.

Implements the 'sparql repl' command for interactive query sessions.

## Linked Modules
- [../../pkg/repl](../../pkg/repl/repl.go) - REPL implementation
- [dataset](./dataset.go) - Dataset loading

## Tags
cli, repl, commands

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#cmd_repl.go> a code:Module ;
    code:name "cmd/sparql/cmd_repl.go" ;
    code:description "CLI command for the interactive REPL" ;
    code:language "go" ;
    code:layer "cli" ;
    code:linksTo <../../pkg/repl/repl.go>, <./dataset.go> ;
    code:tags "cli", "repl", "commands" .
<!-- End LinkedDoc RDF -->
*/

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lilspikey/mini-sparql/pkg/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"interactive"},
	Short:   "Start an interactive REPL for SPARQL queries",
	Long: `Start an interactive Read-Eval-Print Loop for exploring a dataset.

The REPL provides an interactive shell for executing SPARQL queries with:
- Multi-line query editing
- Command history (up/down arrows)
- Tab completion for keywords and commands
- Multiple output formats (table, JSON, CSV)
- Syntax highlighting and colored output

REPL Commands:
  .help               Show help and available commands
  .format [fmt]       Change output format (table, json, csv)
  .load <file>        Load and execute query from file
  .save <file>        Save last query to file
  .history            Show query history
  .clear              Clear screen
  .schema             Show available predicates
  .examples           Show example queries
  .stats              Show dataset statistics
  .exit               Exit REPL (or Ctrl+D)

Examples:
  # Start REPL against the configured dataset
  sparql repl

  # Start REPL against a specific dataset
  sparql repl --dataset people.ttl
`,
	RunE: runREPL,
}

var replDataset string

func init() {
	replCmd.Flags().StringVar(&replDataset, "dataset", "", "Path to dataset file (overrides config)")
}

func runREPL(cmd *cobra.Command, args []string) error {
	rootPath, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	configPath := filepath.Join(rootPath, ".sparqlrc", "config.yaml")
	config, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	datasetPath := resolveDatasetPath(rootPath, replDataset, config)
	fmt.Printf("Loading dataset from %s...\n", datasetPath)

	s, count, err := loadDataset(datasetPath)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d triples\n\n", count)

	replConfig := &repl.Config{
		HistoryFile: filepath.Join(os.TempDir(), ".mini_sparql_history"),
		HistoryDB:   filepath.Join(os.TempDir(), ".mini_sparql_saved_queries.db"),
		Prompt:      "sparql> ",
		NoColor:     noColor,
	}

	r, err := repl.New(s, replConfig)
	if err != nil {
		return fmt.Errorf("failed to create REPL: %w", err)
	}

	return r.Run()
}
