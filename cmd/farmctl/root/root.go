package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"farmdash/config"
	"farmdash/pkg/app"
	"farmdash/pkg/ui"
)

const Version = "0.1.0"

var (
	flagSource string
	flagDB     string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "farmctl",
		Short:         "farmctl - operate a farmdash data store",
		Long:          "farmctl seeds the sqlite store, prints reports and lists tasks from any farmdash data source.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&flagSource, "source", "", "data source: mock, sqlite or remote (default $DATA_SOURCE)")
	cmd.PersistentFlags().StringVar(&flagDB, "db", "", "sqlite path (default $DB_PATH)")

	cmd.AddCommand(
		newSeedCmd(),
		newReportCmd(),
		newTasksCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the persistent flags.
func loadConfig() (config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagSource != "" {
		cfg.DataSource = flagSource
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	// No UI to emulate here.
	cfg.MockDelay = 0
	return cfg, cfg.Validate()
}

func services() (*app.Services, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.Build(cfg)
}
