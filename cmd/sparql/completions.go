/*
# Module: cmd/sparql/completions.go
Dynamic shell completion functions.

Provides context-aware completion for output formats and shells.

## Linked Modules
- [root](./root.go) - Root command

## Tags
cli, completion, autocomplete

## Exports
queryFormatCompletion, shellCompletion, registerCompletions

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#completions.go> a code:Module ;
    code:name "cmd/sparql/completions.go" ;
    code:description "Dynamic shell completion functions" ;
    code:language "go" ;
    code:layer "cli" ;
    code:linksTo <./root.go> ;
    code:exports <#queryFormatCompletion>, <#shellCompletion>, <#registerCompletions> ;
    code:tags "cli", "completion", "autocomplete" .
<!-- End LinkedDoc RDF -->
*/

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// queryFormatCompletion provides completion for query output format flags
func queryFormatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := []string{"table", "json", "csv"}

	var completions []string
	for _, format := range formats {
		if strings.HasPrefix(format, toComplete) {
			completions = append(completions, format)
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// shellCompletion provides completion for shell types
func shellCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	shells := []string{"bash", "zsh", "fish", "powershell"}

	var completions []string
	for _, shell := range shells {
		if strings.HasPrefix(shell, toComplete) {
			completions = append(completions, shell)
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// registerCompletions registers all completion functions for commands
func registerCompletions() error {
	if err := queryCmd.RegisterFlagCompletionFunc("format", queryFormatCompletion); err != nil {
		return fmt.Errorf("failed to register query format completion: %w", err)
	}
	if err := queryCmd.MarkFlagFilename("file"); err != nil {
		return fmt.Errorf("failed to mark query file flag: %w", err)
	}
	if err := queryCmd.MarkFlagFilename("output"); err != nil {
		return fmt.Errorf("failed to mark query output flag: %w", err)
	}
	if err := queryCmd.MarkFlagFilename("dataset"); err != nil {
		return fmt.Errorf("failed to mark query dataset flag: %w", err)
	}
	if err := serveCmd.MarkFlagFilename("dataset"); err != nil {
		return fmt.Errorf("failed to mark serve dataset flag: %w", err)
	}
	if err := replCmd.MarkFlagFilename("dataset"); err != nil {
		return fmt.Errorf("failed to mark repl dataset flag: %w", err)
	}

	completionCmd.ValidArgsFunction = shellCompletion

	return nil
}
