package commands

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"diceroller/internal/config"
	"diceroller/internal/dice"
	"diceroller/internal/logger"
	"diceroller/internal/session"
	"diceroller/internal/web"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web dice roller",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if logMode != "" {
				cfg.LogMode = logMode
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")
	return cmd
}

func serve(cfg config.Config) error {
	log, ah := logger.NewAsync(1024, logger.ParseMode(cfg.LogMode))
	defer ah.Close()

	set, err := cfg.DiceSet()
	if err != nil {
		log.Error("load dice set", slog.String("path", cfg.DiceSetPath), slog.Any("err", err))
		return err
	}

	tmpl, err := template.ParseFiles(
		filepath.Join(cfg.TemplatesDir, "layout.html"),
		filepath.Join(cfg.TemplatesDir, "board.html"),
	)
	if err != nil {
		log.Error("parse templates", slog.String("dir", cfg.TemplatesDir), slog.Any("err", err))
		return err
	}

	srv := &web.Server{
		Set:       set,
		Features:  cfg.Features,
		Roller:    &dice.Roller{Source: dice.RandomSource(), Delay: cfg.RollDelay},
		Store:     session.NewMemoryStore[dice.Board]().WithTTL(cfg.SessionTTL),
		Tmpl:      tmpl,
		Log:       log,
		Scheduler: web.TimerScheduler(),
	}

	hs := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", cfg.Addr), slog.Int("dice", len(set.Dice)))
		errCh <- hs.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		log.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			return err
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(ctx); err != nil {
		log.Error("shutdown", slog.Any("err", err))
		return err
	}
	return nil
}
