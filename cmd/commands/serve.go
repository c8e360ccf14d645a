package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shopdash/shopdash/lib/dataset"
	"github.com/shopdash/shopdash/server"
)

// CreateServeCommand creates the command.
func CreateServeCommand() *cobra.Command {

	var r serveRunner

	c := &cobra.Command{
		Use:   "serve <datadir>",
		Short: "serve the dashboard over HTTP",
		Long:  `Load the dataset once and serve the summary tables and metrics as JSON, together with the embedded dashboard page.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type serveRunner struct {
	address string
	latin1  bool
}

func (r *serveRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *serveRunner) setupFlags(c *cobra.Command) {
	// .env is optional; flags take precedence over the environment.
	_ = godotenv.Load()
	c.Flags().StringVarP(&r.address, "address", "a", getEnv("SHOPDASH_ADDRESS", ":8080"), "address to listen on")
	c.Flags().BoolVar(&r.latin1, "latin1", false, "decode the dataset as ISO 8859-1")
}

func (r *serveRunner) execute(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	db, err := dataset.Load(cmd.Context(), args[0], dataset.Options{Latin1: r.latin1})
	if err != nil {
		return err
	}
	log.Info("dataset loaded",
		"orders", len(db.Orders),
		"payments", len(db.Payments),
		"products", len(db.Products),
		"sellers", len(db.Sellers),
		"items", len(db.Items),
	)
	handler, err := server.New(db, log).Router()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:         r.address,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	errCh := make(chan error, 1)
	log.Info("starting server", "addr", r.address)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
