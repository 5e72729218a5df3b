package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/config"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/ingest"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/metrics"
	"github.com/nekruzvatanshoev/carlot/pkg/logger"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:           RootCmdName,
	Short:         RootCmdShort,
	Long:          RootCmdLong,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	config.SetDefaults(viper.GetViper())

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.String(config.KeyData, "cars.csv", "CSV file of listings")
	flags.String(config.KeyLogMode, "development", "log format: development or prod")
	viper.BindPFlags(flags)

	RootCmd.AddCommand(ReportCmd, ServeCmd, RepriceCmd, RepairCmd)
}

// app is what every command needs after startup.
type app struct {
	cfg     config.Config
	log     *logger.Logger
	metrics *metrics.Registry
	catalog *ingest.Catalog
	diags   []ingest.Diagnostic
}

func loadApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	f, err := os.Open(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := ingest.NewCSVSource(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.DataPath, err)
	}

	m := metrics.NewRegistry()
	cat, diags, err := ingest.NewPipeline(log, m).BuildCatalog(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.DataPath, err)
	}
	return &app{cfg: cfg, log: log, metrics: m, catalog: cat, diags: diags}, nil
}

// car returns the catalogued car at a 0-based index.
func (a *app) car(index int) (*dal.Car, error) {
	if index < 0 || index >= len(a.catalog.Cars) {
		return nil, fmt.Errorf("car index %d out of range [0, %d)", index, len(a.catalog.Cars))
	}
	return a.catalog.Cars[index], nil
}
