/*
# Module: cmd/sparql/cmd_serve.go
CLI command to start the mini-sparql HTTP server.

Loads a dataset into an in-memory triple store and serves it over HTTP.

## Linked Modules
- [../../pkg/server](../../pkg/server/server.go) - HTTP server
- [dataset](./dataset.go) - Dataset loading

## Tags
cli, server, command

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#cmd_serve.go> a code:Module ;
    code:name "cmd/sparql/cmd_serve.go" ;
    code:description "CLI command to start the mini-sparql HTTP server" ;
    code:language "go" ;
    code:layer "cli" ;
    code:linksTo <../../pkg/server/server.go>, <./dataset.go> ;
    code:tags "cli", "server", "command" .
<!-- End LinkedDoc RDF -->
*/

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lilspikey/mini-sparql/pkg/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mini-sparql HTTP server",
	Long: `Start an HTTP server exposing a SPARQL SELECT query endpoint.

The dataset is loaded at startup and kept in memory for the lifetime of
the process.

Examples:
  # Start server on default port 8080
  sparql serve

  # Start server on custom port
  sparql serve --port 9000

  # Start server on all interfaces
  sparql serve --host 0.0.0.0 --port 8080

  # Query the server
  curl http://localhost:8080/sparql?query=SELECT+*+WHERE+{+?s+?p+?o+}+LIMIT+10
`,
	RunE: runServe,
}

var (
	serveDataset string
	serveHost    string
	servePort    int
	serveCache   bool
)

func init() {
	serveCmd.Flags().StringVar(&serveDataset, "dataset", "", "Path to dataset file (overrides config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind server to (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveCache, "cache", true, "Enable response caching")
}

func runServe(cmd *cobra.Command, args []string) error {
	rootPath, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	configPath := filepath.Join(rootPath, ".sparqlrc", "config.yaml")
	config, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	datasetPath := resolveDatasetPath(rootPath, serveDataset, config)
	fmt.Printf("Loading dataset from %s...\n", datasetPath)

	s, count, err := loadDataset(datasetPath)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d triples\n", count)

	host := config.Server.Host
	if serveHost != "" {
		host = serveHost
	}
	port := config.Server.Port
	if servePort != 0 {
		port = servePort
	}

	serverConfig := &server.Config{
		Host:            host,
		Port:            port,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		EnableCORS:      config.Server.CORS,
		EnableCache:     serveCache && config.Server.Cache,
		CacheMaxEntries: config.Server.CacheMaxEntries,
		CacheTTL:        config.Server.CacheTTL,
	}

	srv := server.NewServer(serverConfig, s)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		fmt.Println("\nShutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			logrus.WithError(err).Error("error during shutdown")
		}
		os.Exit(0)
	}()

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
