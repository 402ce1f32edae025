package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"securiwisetraining.co.uk/web/internal/catalog"
	"securiwisetraining.co.uk/web/internal/config"
	"securiwisetraining.co.uk/web/internal/detail"
	"securiwisetraining.co.uk/web/internal/format"
	"securiwisetraining.co.uk/web/internal/observability"
)

var cfgFile string

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "securiwise-web",
		Short: "SecuriWise Training website",
		Long: `Serves the SecuriWise Training site: course and CPD catalogues with filtering and
search, course outline dialogs, the coverage checker and enquiry drafts.`,
		SilenceUsage: true,
		// no subcommand means serve
		RunE: func(cmd *cobra.Command, args []string) error { return runServe(cmd.Context()) },
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path (optional)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  func(cmd *cobra.Command, args []string) error { return runServe(cmd.Context()) },
	})
	root.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the catalogue against the course outline table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			return runCheck(cfg, cmd.OutOrStdout())
		},
	})
	return root
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening",
			zap.String("addr", cfg.Addr),
			zap.Bool("dev", cfg.Dev),
			zap.String("env", cfg.Env),
			zap.String("tag_match", cfg.TagMatch),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// runCheck validates the configured catalogue and prints a one-line summary per section.
func runCheck(cfg *config.Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	for _, g := range []catalog.Group{catalog.GroupCourses, catalog.GroupCPD} {
		sec := cat.Section(g)
		values := make([]string, 0, len(sec.Categories))
		for _, c := range sec.Categories {
			values = append(values, c.Value)
		}
		fmt.Fprintf(out, "%s: %s, categories %s\n", g, format.Count(len(sec.Cards), "card", "cards"), strings.Join(values, ", "))
	}
	fmt.Fprintf(out, "details: %s\n", format.Count(len(detail.Keys()), "outline", "outlines"))
	return nil
}
