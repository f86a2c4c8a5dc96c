/*
# Module: cmd/sparql/main.go
Main CLI entry point for mini-sparql.

## Linked Modules
- [root](./root.go) - Root command tree

## Tags
cli, main, entrypoint

## Exports
main

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "cmd/sparql/main.go" ;
    code:description "Main CLI entry point for mini-sparql" ;
    code:tags "cli", "main", "entrypoint" .
<!-- End LinkedDoc RDF -->
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
