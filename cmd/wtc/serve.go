package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Veraticus/template-classifier/internal/certs"
	"github.com/Veraticus/template-classifier/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classifier as a web page",
		Long: `Serve a browser front-end for the classifier.

Requests under /api are proxied to serve.upstream, so a browser using the
production base path /api reaches the classification service through this
server.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "Address to listen on")
	cmd.Flags().String("upstream", "http://localhost:8000", "Classification service to proxy /api to (empty disables the proxy)")
	cmd.Flags().Bool("tls", false, "Serve HTTPS with a self-signed localhost certificate")

	_ = viper.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("serve.upstream", cmd.Flags().Lookup("upstream"))
	_ = viper.BindPFlag("serve.tls", cmd.Flags().Lookup("tls"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	server, err := web.NewServer(web.Config{
		Classifier:     client,
		Logger:         slog.Default(),
		Upstream:       cfg.Serve.Upstream,
		ServiceURL:     client.BaseURL(),
		AllowedOrigins: cfg.Serve.CORSOrigins,
		RewriteEnabled: cfg.Features.Rewrite,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Serve.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if cfg.Serve.TLS {
		cert, certErr := certs.NewStore(cfg.Serve.CertDir).LoadOrCreate()
		if certErr != nil {
			return fmt.Errorf("failed to prepare certificate: %w", certErr)
		}
		srv.TLSConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Serving web front-end",
			"addr", cfg.Serve.Addr,
			"tls", cfg.Serve.TLS,
			"upstream", cfg.Serve.Upstream,
			"base_url", client.BaseURL())
		if srv.TLSConfig != nil {
			errCh <- srv.ListenAndServeTLS("", "")
			return
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}
