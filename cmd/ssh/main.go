package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"

	"github.com/flavono123/valentine/internal/clipboard"
	"github.com/flavono123/valentine/internal/config"
	"github.com/flavono123/valentine/internal/store"
	"github.com/flavono123/valentine/internal/ui"
)

type closer interface {
	Close()
}

type modelKey struct{}

func main() {
	cfg := config.Load()
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		log.Warn("Failed to get working directory", "err", workErr)
	}
	log.Info("SSH config", "host", cfg.SSHHost, "port", cfg.SSHPort, "hostKeyPath", cfg.HostKeyPath, "db", cfg.DBPath, "workingDir", workingDir)

	if err := config.EnsureDataDir(); err != nil {
		log.Fatal("failed to create data dir", "err", err)
	}
	prefs, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to open settings", "err", err)
	}
	defer prefs.Close()
	if err := prefs.Migrate(); err != nil {
		log.Fatal("failed to migrate settings", "err", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSHHost, cfg.SSHPort)),
		wish.WithMiddleware(
			closeMiddleware,
			bm.Middleware(teaHandler(cfg, prefs)),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	}
	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Starting SSH server", "host", cfg.SSHHost, "port", cfg.SSHPort)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("server error", "err", err)
		}
	}()

	<-done
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "err", err)
	}
}

// teaHandler builds one screen per session. Preferences are keyed by the
// SSH user; the clipboard is the client's terminal.
func teaHandler(cfg *config.Config, prefs *store.SQLiteStore) bm.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sess.Pty()
		id := uuid.NewString()
		log.Info("New session", "id", id, "user", sess.User(), "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		model := ui.InitModel(ui.Options{
			Settings:   prefs.ForUser(sess.User()),
			Clipboard:  clipboard.NewOSC52(sess, pty.Term),
			AppURL:     cfg.PublicURL,
			Renderer:   bm.MakeRenderer(sess),
			CellWidth:  cfg.CellWidth,
			CellHeight: cfg.CellHeight,
		})
		sess.Context().SetValue(modelKey{}, model)

		return model, []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
		}
	}
}

// closeMiddleware runs after the program has exited, however the session
// ended, and releases what the screen still holds.
func closeMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if m, ok := sess.Context().Value(modelKey{}).(closer); ok {
			m.Close()
		}
		log.Info("Session ended", "user", sess.User())
		next(sess)
	}
}
