/*
# Module: cmd/sparql/dataset.go
Dataset resolution and loading shared by query/repl/serve.

## Linked Modules
- [../../pkg/loader](../../pkg/loader/loader.go) - Dataset file parser
- [../../internal/store](../../internal/store) - Triple store

## Tags
cli, dataset, loader

## Exports
resolveDatasetPath, loadDataset

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#dataset.go> a code:Module ;
    code:name "cmd/sparql/dataset.go" ;
    code:description "Dataset resolution and loading shared by query/repl/serve" ;
    code:language "go" ;
    code:layer "cli" ;
    code:linksTo <../../pkg/loader/loader.go>, <../../internal/store> ;
    code:exports <#resolveDatasetPath>, <#loadDataset> ;
    code:tags "cli", "dataset", "loader" .
<!-- End LinkedDoc RDF -->
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lilspikey/mini-sparql/internal/store"
	"github.com/lilspikey/mini-sparql/pkg/loader"
)

// resolveDatasetPath returns the dataset path to load: explicit flag value,
// else the configured path relative to rootPath.
func resolveDatasetPath(rootPath, flagValue string, config *Config) string {
	if flagValue != "" {
		if filepath.IsAbs(flagValue) {
			return flagValue
		}
		return filepath.Join(rootPath, flagValue)
	}
	if filepath.IsAbs(config.Dataset) {
		return config.Dataset
	}
	return filepath.Join(rootPath, config.Dataset)
}

// loadDataset reads datasetPath into a fresh triple store. A missing
// dataset file yields an empty store rather than an error, so a freshly
// initialized directory can still be queried.
func loadDataset(datasetPath string) (*store.TripleStore, int, error) {
	s := store.NewTripleStore()

	f, err := os.Open(datasetPath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	count, err := loader.Load(f, s)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load dataset: %w", err)
	}

	return s, count, nil
}
