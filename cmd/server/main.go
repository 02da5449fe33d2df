// soulcaster-server serves one solo soulcaster session per SSH connection.
// Build:
//
//	go build -o soulcaster-server ./cmd/server
//
// Usage:
//
//	./soulcaster-server [--port 2222] [--key server_host_key] [--tuning tuning.yaml]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"
	"unicode"

	"soulcaster/internal/config"
	"soulcaster/internal/game"
	internalssh "soulcaster/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	var envCfg config.Env
	if err := config.ParseEnv(&envCfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	port := flag.Int("port", envCfg.Port, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	tuningPath := flag.String("tuning", "", "YAML tuning file (defaults to $SOULCASTER_TUNING)")
	flag.Parse()

	tuning, err := config.Resolve(*tuningPath, envCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load tuning: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: tuning.Level()}))

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, tuning, logger)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("soulcaster SSH server listening", "port", *port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}

// handleSession runs one game for the life of the connection.
func handleSession(s gossh.Session, tuning config.Tuning, logger *slog.Logger) {
	log := logger.With("user", sanitizeName(s.User()), "remote", s.RemoteAddr().String())
	if _, _, hasPTY := s.Pty(); !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	screen, err := internalssh.NewScreen(s)
	if err != nil {
		fmt.Fprintf(s, "%v\n", err)
		log.Warn("screen setup failed", "error", err)
		return
	}
	defer screen.Fini()

	g, err := game.New(screen, tuning, log)
	if err != nil {
		log.Error("session setup failed", "error", err)
		return
	}
	g.PassDelay = 40 * time.Millisecond

	log.Info("session connected")
	if err := g.Run(); err != nil {
		log.Error("session ended", "error", err)
		return
	}
	log.Info("session closed")
}

// maxNameBytes caps the logged SSH user name.
const maxNameBytes = 16

// sanitizeName drops control characters from a client-supplied name and
// truncates it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	out := make([]rune, 0, len(name))
	n := 0
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		size := len(string(r))
		if n+size > maxNameBytes {
			break
		}
		out = append(out, r)
		n += size
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
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
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "soulcaster server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600); err != nil {
			logger.Warn("could not persist host key", "path", path, "error", err)
		}
	}
	return signer, nil
}
