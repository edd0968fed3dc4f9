// Package root contains the root command for the application
package root

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"studyabroad/departure-planner/internal/config"
	"studyabroad/departure-planner/internal/container"
	"studyabroad/departure-planner/internal/export"
	"studyabroad/departure-planner/internal/planner"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatXML   = "xml"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	Store     string
	StorePath string
	Format    string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "departure-planner",
		Short: "Plan a study-abroad departure: checklist, living-cost benchmarks and budget.",
		Long: `departure-planner generates a dated preparation checklist from your departure date,
compares your monthly budget with typical costs in your destination city and
totals your one-time and monthly costs in both currencies.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to departure-planner!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app == nil {
				return
			}
			if err := app.Close(); err != nil {
				Log.Warnf("Failed to close store: %v", err)
			}
			app = nil
		},
	}

	// SharedFlags holds the persistent flag values
	SharedFlags = CommonFlags{}

	app *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.Store, "store", "", "Storage backend (file, sqlite, redis, memory)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.StorePath, "store-path", "", "Path of the file or sqlite store")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", FormatTable, "Output format (table, json, xml)")
}

func setup(cmd *cobra.Command) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if SharedFlags.Store != "" {
		cfg.Store.Backend = SharedFlags.Store
	}
	if SharedFlags.StorePath != "" {
		cfg.Store.Path = SharedFlags.StorePath
	}

	SharedFlags.Format = strings.ToLower(SharedFlags.Format)
	switch SharedFlags.Format {
	case FormatTable, FormatJSON, FormatXML:
	default:
		return fmt.Errorf("unsupported output format: %s", SharedFlags.Format)
	}

	Log = config.ConfigureLoggingFromConfig(cfg)
	export.SetLogger(Log)
	export.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

	c, err := container.NewContainer(Context(cmd), cfg)
	if err != nil {
		return err
	}
	app = c
	return nil
}

// Context returns the command context or a background one.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Planner returns the planner wired for the running command.
func Planner() *planner.Planner {
	if app == nil {
		Log.Fatalf("Planner requested before the root command initialized")
	}
	return app.GetPlanner()
}

// App returns the dependency container of the running command.
func App() *container.Container {
	return app
}

// Print writes v in the selected format; table uses the rendered text.
func Print(w io.Writer, v interface{}, table func() string) error {
	switch SharedFlags.Format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatXML:
		out, err := xml.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode XML: %w", err)
		}
		_, err = fmt.Fprintln(w, xml.Header+string(out))
		return err
	default:
		_, err := fmt.Fprintln(w, table())
		return err
	}
}
