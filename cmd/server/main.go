// vecerka-server hosts the corner shop over SSH. Every connection gets its
// own shop, inventory and log panel. Build:
//
//	go build -o vecerka-server ./cmd/server
//
// Usage:
//
//	./vecerka-server [--config vecerka.yaml]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"vecerka/internal/config"
	"vecerka/internal/game"
	"vecerka/internal/item"
	internalssh "vecerka/internal/ssh"
	"vecerka/internal/telemetry"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes bounds the display name taken from the SSH username.
const maxNameBytes = 16

// allowedTerms lists the TERM values handed to terminfo. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := telemetry.ConfigureSlog(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	shutdownMetrics, err := telemetry.InitMetrics(telemetry.MetricsConfig{
		Enabled:  cfg.Metrics.Enabled,
		Interval: cfg.Metrics.Interval,
	})
	if err != nil {
		log.Fatalf("metrics: %v", err)
	}
	metrics, err := telemetry.NewMetrics()
	if err != nil {
		log.Fatalf("metrics: %v", err)
	}
	catalog, err := game.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("%v", err)
	}
	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, logger)
	if err != nil {
		log.Fatalf("host key: %v", err)
	}

	h := &host{cfg: cfg, catalog: catalog, metrics: metrics, logger: logger}
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     h.handleSession,
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		// Any client may connect; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("ssh shutdown", "error", err)
		}
	}()

	logger.Info("vecerka SSH server listening", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		logger.Error("ssh server stopped", "error", err)
	}
	if err := shutdownMetrics(context.Background()); err != nil {
		logger.Warn("metrics shutdown", "error", err)
	}
}

// ─── sessions ───────────────────────────────────────────────────────────────

// host owns what sessions share: config, catalog, meter and base logger.
// All of it is read-only once the server is up.
type host struct {
	cfg     *config.Config
	catalog *item.Catalog
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// termMu serialises os.Setenv("TERM") around terminfo screen creation.
var termMu sync.Mutex

// handleSession runs one shop for the lifetime of the SSH connection.
func (h *host) handleSession(s gossh.Session) {
	name := sanitizeName(s.User())
	logger := h.logger.With("user", name, "remote", s.RemoteAddr().String())

	tty, err := internalssh.NewTty(s)
	if err != nil {
		fmt.Fprintln(s, "This shop needs a PTY. Connect with: ssh -t -p", h.cfg.Server.Port, "<host>")
		return
	}
	term := tty.Term()
	if !allowedTerms[term] {
		logger.Info("unsupported TERM, using default", "term", term, "default", defaultTerm)
		term = defaultTerm
	}

	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	sess, err := game.NewSession(game.Options{
		Config:  h.cfg,
		Catalog: h.catalog,
		Metrics: h.metrics,
		Logger:  logger,
		Name:    name,
	})
	if err != nil {
		screen.Fini()
		logger.Error("session setup failed", "error", err)
		fmt.Fprintf(s, "Shop setup failed: %v\n", err)
		return
	}
	if err := game.New(screen, sess, 0).Run(s.Context()); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("session ended with error", "error", err)
	}
}

// sanitizeName strips control characters from an SSH username and cuts it
// to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range name {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key when the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "vecerka server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		logger.Warn("host key not persisted", "path", path, "error", err)
	}
	return signer, nil
}
