package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/MauriDarwoft/biblioteca/internal/api"
	"github.com/MauriDarwoft/biblioteca/internal/config"
	"github.com/MauriDarwoft/biblioteca/internal/log"
	"github.com/MauriDarwoft/biblioteca/internal/prefs"
	"github.com/MauriDarwoft/biblioteca/internal/shelf"
	"github.com/MauriDarwoft/biblioteca/internal/ui"
	"github.com/MauriDarwoft/biblioteca/internal/voice"
)

// Options configure the biblioteca application.
type Options struct {
	EnvFile   string // explicit .env path; empty probes ./.env
	PrefsPath string // empty uses default ~/.config/biblioteca/prefs.toml
}

// Run boots the biblioteca TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	log.Init(userPrefs.LogDir)
	defer log.Sync()
	log.Info("starting biblioteca",
		zap.String("mode", cfg.Mode),
		zap.String("api_url", cfg.APIURL))

	client, err := api.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := shelf.New(client)

	var adapter *voice.Adapter
	if userPrefs.VoiceCommand != "" {
		adapter = voice.NewAdapter(voice.NewCommandRecognizer(userPrefs.VoiceCommand))
	} else {
		adapter = voice.NewAdapter(nil)
	}
	defer adapter.Close()

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Voice:     adapter,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	}

	program := tea.NewProgram(ui.New(uiOpts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		log.Error("ui exited with error", zap.Error(err))
		return err
	}
	return nil
}
