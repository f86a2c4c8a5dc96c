/*
# Module: cmd/sparql/completions_test.go
Tests for shell completion functions.

Tests completion for output formats and shell types.

## Linked Modules
- [completions](./completions.go) - Completion functions

## Tags
cli, test, completion

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#completions_test.go> a code:Module ;
    code:name "cmd/sparql/completions_test.go" ;
    code:description "Tests for shell completion functions" ;
    code:language "go" ;
    code:layer "cli" ;
    code:linksTo <./completions.go> ;
    code:tags "cli", "test", "completion" .
<!-- End LinkedDoc RDF -->
*/

package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestQueryFormatCompletion(t *testing.T) {
	tests := []struct {
		name       string
		toComplete string
		wantCount  int
		wantItems  []string
	}{
		{
			name:       "empty prefix returns all query formats",
			toComplete: "",
			wantCount:  3,
			wantItems:  []string{"table", "json", "csv"},
		},
		{
			name:       "j prefix returns json",
			toComplete: "j",
			wantCount:  1,
			wantItems:  []string{"json"},
		},
		{
			name:       "nonexistent prefix returns nothing",
			toComplete: "xyz",
			wantCount:  0,
			wantItems:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			completions, directive := queryFormatCompletion(cmd, []string{}, tt.toComplete)

			if len(completions) != tt.wantCount {
				t.Errorf("queryFormatCompletion() returned %d items, want %d", len(completions), tt.wantCount)
			}

			if directive != cobra.ShellCompDirectiveNoFileComp {
				t.Errorf("queryFormatCompletion() returned directive %v, want NoFileComp", directive)
			}

			completionMap := make(map[string]bool)
			for _, c := range completions {
				completionMap[c] = true
			}

			for _, want := range tt.wantItems {
				if !completionMap[want] {
					t.Errorf("queryFormatCompletion() missing expected item: %s", want)
				}
			}
		})
	}
}

func TestShellCompletion(t *testing.T) {
	tests := []struct {
		name       string
		toComplete string
		wantCount  int
		wantItems  []string
	}{
		{
			name:       "empty prefix returns all shells",
			toComplete: "",
			wantCount:  4,
			wantItems:  []string{"bash", "zsh", "fish", "powershell"},
		},
		{
			name:       "b prefix returns bash",
			toComplete: "b",
			wantCount:  1,
			wantItems:  []string{"bash"},
		},
		{
			name:       "p prefix returns powershell",
			toComplete: "p",
			wantCount:  1,
			wantItems:  []string{"powershell"},
		},
		{
			name:       "sh prefix returns nothing",
			toComplete: "sh",
			wantCount:  0,
			wantItems:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			completions, directive := shellCompletion(cmd, []string{}, tt.toComplete)

			if len(completions) != tt.wantCount {
				t.Errorf("shellCompletion() returned %d items, want %d", len(completions), tt.wantCount)
			}

			if directive != cobra.ShellCompDirectiveNoFileComp {
				t.Errorf("shellCompletion() returned directive %v, want NoFileComp", directive)
			}

			completionMap := make(map[string]bool)
			for _, c := range completions {
				completionMap[c] = true
			}

			for _, want := range tt.wantItems {
				if !completionMap[want] {
					t.Errorf("shellCompletion() missing expected item: %s", want)
				}
			}
		})
	}
}
