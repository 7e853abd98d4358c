// Package main starts the PadLink server.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/frudas24/padlink/internal/app"
	"github.com/frudas24/padlink/internal/config"
	"github.com/frudas24/padlink/internal/dispatch"
	"github.com/frudas24/padlink/internal/interaction"
	"github.com/frudas24/padlink/internal/keybind"
	"github.com/frudas24/padlink/internal/session"
	"github.com/frudas24/padlink/internal/signaling"
	"github.com/frudas24/padlink/internal/wininput"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	dispatch.SetDebugLogging(debug)
	if debug {
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	bindings, err := loadBindings(cfg.BindingsPath)
	if err != nil {
		return err
	}

	platform, err := wininput.NewPlatform()
	if err != nil {
		if !errors.Is(err, wininput.ErrUnsupported) {
			return err
		}
		log.Printf("input check: %v (running without delivery)", err)
	}

	target, err := interaction.Attach(bindings, platform, interaction.Options{
		ProcessName:    cfg.TargetProcess,
		PollInterval:   cfg.PollInterval(),
		UsePostMessage: cfg.UsePostMessage,
	})
	if err != nil {
		return err
	}

	peers, err := signaling.NewPeerFactory()
	if err != nil {
		_ = target.Close()
		return err
	}

	sess := session.New(cfg.UIPassword, cfg.PasswordMode)
	appInstance, err := app.New(cfg, sess, target, peers, signaling.ViewerReplace)
	if err != nil {
		_ = target.Close()
		return err
	}
	defer func() {
		if err := appInstance.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux)
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// loadBindings reads the binding file, writing the defaults on first run.
func loadBindings(path string) (*keybind.Set, error) {
	set, err := keybind.Load(path)
	if err != nil {
		return nil, err
	}
	if fileExists(path) {
		log.Printf("bindings: %d loaded (%s)", set.Len(), path)
		return set, nil
	}
	if err := keybind.Save(path, set); err != nil {
		log.Printf("bindings: write defaults failed: %v", err)
		return set, nil
	}
	log.Printf("bindings: defaults written (%s)", path)
	return set, nil
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("PadLink starting")
	logEnvStatus(cfg)
	log.Printf("target process: %s (poll %s)", cfg.TargetProcess, cfg.PollInterval())
	if cfg.UsePostMessage {
		log.Printf("delivery: posted messages")
	} else {
		log.Printf("delivery: global mouse input")
	}
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found and required values are set.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	if cfg.PasswordMode {
		if strings.TrimSpace(os.Getenv("UI_PASSWORD")) == "" {
			log.Printf("env UI_PASSWORD: missing")
		} else {
			log.Printf("env UI_PASSWORD: set")
		}
	} else {
		log.Printf("env PASSWORD_MODE: disabled (dev mode)")
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
