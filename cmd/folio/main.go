package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/eringen/folio"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("folio %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// configFromEnv builds the site config from environment variables.
func configFromEnv() folio.SiteConfig {
	dev, _ := strconv.ParseBool(os.Getenv("FOLIO_DEV"))
	return folio.SiteConfig{
		Title:        folio.EnvOr("SITE_TITLE", ""),
		URL:          folio.EnvOr("SITE_URL", ""),
		Description:  folio.EnvOr("SITE_DESCRIPTION", ""),
		Addr:         folio.EnvOr("ADDR", ":3000"),
		PathPrefix:   folio.EnvOr("PATH_PREFIX", ""),
		ContentDir:   folio.EnvOr("CONTENT_DIR", "posts"),
		MetadataPath: folio.EnvOr("METADATA_PATH", ""),
		StaticDir:    folio.EnvOr("STATIC_DIR", "public"),
		AvatarPath:   folio.EnvOr("AVATAR_PATH", ""),
		Development:  dev,
	}
}

func runServe() error {
	app := folio.New(configFromEnv())
	logger := app.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- app.Start()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
		return err
	}
	return <-errc
}

func printUsage() {
	fmt.Println(`folio - a personal blog and portfolio server

Usage:
  folio <command>

Commands:
  serve         Start the HTTP server
  version       Print the folio version
  help          Show this help message

Environment (serve):
  ADDR              listen address (default :3000)
  PATH_PREFIX       deployment path prefix, e.g. /blog
  CONTENT_DIR       markdown posts directory (default posts)
  METADATA_PATH     YAML site metadata file
  STATIC_DIR        static assets served under /public (default public)
  AVATAR_PATH       avatar image path (default /public/avatar.jpg)
  SITE_TITLE        site title when metadata has none
  SITE_URL          canonical site URL
  SITE_DESCRIPTION  site description
  FOLIO_DEV         human-readable logs when true`)
}
