/*
# Module: cmd/sparql/root.go
Root command for the mini-sparql CLI.

Defines the root command with global flags and version information.

## Linked Modules
- [main](./main.go) - CLI entry point
- [config](./config.go) - Configuration handling

## Tags
cli, root, cobra

## Exports
rootCmd

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#root.go> a code:Module ;

	code:name "cmd/sparql/root.go" ;
	code:description "Root command for the mini-sparql CLI" ;
	code:language "go" ;
	code:layer "cli" ;
	code:linksTo <./main.go>, <./config.go> ;
	code:exports <#rootCmd> ;
	code:tags "cli", "root", "cobra" .

<!-- End LinkedDoc RDF -->
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// Version is the current version of the CLI.
	Version = "0.1.0"
	// Name is the application name.
	Name = "mini-sparql"
)

var (
	cfgFile string
	verbose bool
	noColor bool
	quiet   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sparql",
	Short: "In-memory RDF triple store and SPARQL SELECT query engine",
	Long: `mini-sparql - In-memory RDF triple store and SPARQL SELECT query engine

mini-sparql loads a Turtle-like dataset into an in-memory triple store and
lets you query it with a SPARQL SELECT subset: joins, OPTIONAL, UNION,
FILTER, ORDER BY, LIMIT/OFFSET and DISTINCT.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .sparqlrc/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "minimal output (for scripting)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)

	if err := registerCompletions(); err != nil {
		panic(fmt.Sprintf("failed to register completions: %v", err))
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v%s\n", Name, Version)
	},
}
