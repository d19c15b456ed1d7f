package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/httpapi"
	"jobtrack-engine/internal/lockfile"
	"jobtrack-engine/internal/logging"
	"jobtrack-engine/internal/scheduler"
	"jobtrack-engine/internal/secrets"
	"jobtrack-engine/internal/skills"
	"jobtrack-engine/internal/store"
)

var (
	servePort       int
	servePrintToken bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides app.port)")
	serveCmd.Flags().BoolVar(&servePrintToken, "print-token", false, "print the admin token on stdout once listening")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	dataDir := resolveDataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	release, err := lockfile.Acquire(dataDir, 2*time.Second)
	if err != nil {
		return err
	}
	defer release()

	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultConfigPath())
	if err != nil {
		return fmt.Errorf("config bootstrap failed: %w", err)
	}

	// Load config and keep it reloadable
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	logging.Init(cfg.Log.Level, cfg.Log.Format)
	for _, w := range vr.Warnings {
		slog.Warn("config", "path", userCfgPath, "warning", w)
	}
	if !vr.OK() {
		return fmt.Errorf("config %s is invalid:\n- %s", userCfgPath, strings.Join(vr.Errors, "\n- "))
	}
	if servePort > 0 {
		cfg.App.Port = servePort
	}

	var cfgVal atomic.Value // stores config.Config
	cfgVal.Store(cfg)

	vocab, err := config.BuildVocabulary(cfg)
	if err != nil {
		return fmt.Errorf("vocabulary: %w", err)
	}
	var extractor atomic.Pointer[skills.Extractor]
	extractor.Store(skills.NewExtractor(vocab))

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	token, persisted, err := secrets.EnsureAdminToken(secrets.AdminAccount(dataDir))
	if err != nil {
		slog.Warn("keychain unavailable; admin token is valid for this run only", "err", err)
	}
	if token == "" {
		return errors.New("could not create admin token")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := httpapi.Deps{
		DB:          db.Pool,
		Hub:         events.NewHub(),
		CfgVal:      &cfgVal,
		Extractor:   &extractor,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		AdminToken:  token,
		Shutdown:    stop,
	}

	checkpointEvery := time.Duration(cfg.Maintenance.CheckpointSeconds) * time.Second
	go scheduler.Every(ctx, checkpointEvery, "wal-checkpoint", func(ctx context.Context) error {
		return store.Checkpoint(ctx, db.Pool, "PASSIVE")
	})

	// Bind to loopback only; the engine serves a local UI.
	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           httpapi.NewHandler(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("engine listening",
		"addr", "http://"+ln.Addr().String(),
		"db", dbPath,
		"config", userCfgPath,
		"terms", vocab.Len(),
		"token_persisted", persisted,
	)
	if servePrintToken {
		fmt.Fprintf(cmd.OutOrStdout(), "ADMIN_TOKEN=%s\n", token)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("shutdown", "err", err)
	}
	if err := store.Checkpoint(shutdownCtx, db.Pool, "TRUNCATE"); err != nil {
		slog.Warn("final checkpoint", "err", err)
	}
	slog.Info("engine stopped")
	return nil
}
