package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fraudlens/internal/catalog"
	"fraudlens/internal/config"
	"fraudlens/internal/intent"
	"fraudlens/internal/logging"
	"fraudlens/internal/telemetry"
	"fraudlens/internal/ui"
)

var (
	cfgFile     string
	variantFlag string
	catalogFlag string
)

var rootCmd = &cobra.Command{
	Use:   "fraudlens",
	Short: "The FraudLens landing experience, in your terminal",
	Long: `fraudlens renders the FraudLens marketing landing pages as an
interactive terminal app: feature showcase, tiered pricing, regional fraud
statistics, and a rotating testimonial panel.

Two variants share the same catalog:
  landing   feature-tab switcher (default)
  premium   regional statistics switcher`,
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); FRAUDLENS_* env vars override it")
	rootCmd.Flags().StringVar(&variantFlag, "variant", "", "starting variant: landing or premium")
	rootCmd.Flags().StringVar(&catalogFlag, "catalog", "", "catalog file (YAML); default is the built-in catalog")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if variantFlag != "" {
		cfg.Variant = variantFlag
	}
	if catalogFlag != "" {
		cfg.CatalogPath = catalogFlag
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return err
		}
	}

	ctx := context.Background()
	exporter, err := telemetry.NewExporter(ctx)
	if err != nil {
		// Telemetry is best-effort; a broken endpoint must not block the UI.
		logger.Warn("telemetry disabled", zap.Error(err))
		exporter = nil
	}
	defer func() { _ = exporter.Shutdown(ctx) }()

	mode := ui.ModeLanding
	if cfg.Variant == config.VariantPremium {
		mode = ui.ModePremium
	}

	model := ui.NewAppModel(cat, intent.NewSink(logger, exporter), ui.Options{
		StartMode:        mode,
		StartRegion:      catalog.Region(cfg.Region),
		RotationInterval: cfg.RotationInterval,
	})

	logger.Info("starting",
		zap.String("variant", mode.String()),
		zap.Duration("rotation_interval", cfg.RotationInterval),
	)

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
