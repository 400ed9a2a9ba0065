package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/deskhub-io/deskhub-console/internal/client"
	"github.com/deskhub-io/deskhub-console/internal/config"
	"github.com/deskhub-io/deskhub-console/internal/session"
	"github.com/deskhub-io/deskhub-console/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "deskhub-console",
	Short:   "DeskHub Console - web front end for the DeskHub ticketing API",
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var configPathFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the console web server",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("DeskHub Console %s\n", rootCmd.Version)
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPathFlag, "config", "", "Directory containing config.yaml (defaults to CONFIG_PATH or .)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath := configPathFlag
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "."
	}

	if err := config.Load(configPath); err != nil {
		log.Printf("Failed to load configuration from file: %v", err)
		// Continue with defaults and environment variables
	}
	cfg := config.Get()
	if cfg == nil {
		return errors.New("configuration unavailable")
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	api := client.New(client.Config{
		BaseURL:   cfg.Backend.BaseURL,
		UserAgent: cfg.Backend.UserAgent,
		Timeout:   cfg.Backend.Timeout,
		Debug:     cfg.App.Debug,
	})

	renderer := web.NewRenderer(cfg.Template.Dir, cfg.Template.Debug)

	cookies := session.Options{
		MaxAge:   cfg.Session.MaxAge,
		Path:     "/",
		Secure:   cfg.Session.Secure,
		HTTPOnly: cfg.Session.HTTPOnly,
	}

	handlers := web.NewHandlers(api, renderer, cookies)
	router := web.NewRouter(handlers)

	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("DeskHub Console listening on %s (backend %s)", srv.Addr, cfg.Backend.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
