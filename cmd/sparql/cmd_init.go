/*
# Module: cmd/sparql/cmd_init.go
Init command implementation.

Initializes mini-sparql in a directory by creating a configuration
directory and an empty dataset file.

## Linked Modules
- [root](./root.go) - Root command
- [config](./config.go) - Configuration handling

## Tags
cli, command, init

## Exports
initCmd

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#cmd_init.go> a code:Module ;

	code:name "cmd/sparql/cmd_init.go" ;
	code:description "Init command implementation" ;
	code:language "go" ;
	code:layer "cli" ;
	code:linksTo <./root.go>, <./config.go> ;
	code:exports <#initCmd> ;
	code:tags "cli", "command", "init" .

<!-- End LinkedDoc RDF -->
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize mini-sparql in a directory",
	Long: `Initialize mini-sparql in a directory by creating the .sparqlrc
configuration directory, a config file, and an empty dataset file.

Examples:
  sparql init                  # Initialize in current directory
  sparql init /path/to/project # Initialize in specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	targetPath := "."
	if len(args) > 0 {
		targetPath = args[0]
	}

	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", absPath)
	}

	sparqlDir := filepath.Join(absPath, ".sparqlrc")
	if err := os.MkdirAll(sparqlDir, 0755); err != nil {
		return fmt.Errorf("failed to create .sparqlrc directory: %w", err)
	}

	configPath := filepath.Join(sparqlDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := saveDefaultConfig(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		fmt.Printf("✓ Created config file: %s\n", configPath)
	} else {
		fmt.Printf("⚠ Config file already exists: %s\n", configPath)
	}

	datasetPath := filepath.Join(absPath, DefaultConfig().Dataset)
	if _, err := os.Stat(datasetPath); os.IsNotExist(err) {
		if err := createEmptyDataset(datasetPath); err != nil {
			return fmt.Errorf("failed to create dataset file: %w", err)
		}
		fmt.Printf("✓ Created dataset file: %s\n", datasetPath)
	} else {
		fmt.Printf("⚠ Dataset file already exists: %s\n", datasetPath)
	}

	fmt.Printf("\n✓ mini-sparql initialized successfully in %s\n", absPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Review and customize .sparqlrc/config.yaml")
	fmt.Println("  2. Add triples to the dataset file")
	fmt.Println("  3. Run 'sparql repl' or 'sparql query' to explore it")

	return nil
}

// createEmptyDataset writes a starter dataset file with a commented example.
func createEmptyDataset(path string) error {
	content := `# mini-sparql dataset
# Each statement is "subject predicate object ." using identifiers,
# <IRIs>, "strings", numbers, or true/false, optionally declaring
# @prefix shortcuts for IRIs.
#
# @prefix ex: <https://example.org/> .
# alice ex:name "Alice" .
# alice ex:age 30 .
`
	return os.WriteFile(path, []byte(content), 0644)
}
