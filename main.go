package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rtm0/cfmeta/internal/config"
	"github.com/rtm0/cfmeta/internal/datamodel"
	"github.com/rtm0/cfmeta/internal/ncmeta"
)

// Version is the cfmeta release.
const Version = "0.1.0"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	settings, err := config.LoadSettings()
	if err != nil {
		logger.Error("Could not load settings", "err", err)
		os.Exit(1)
	}
	cmd, app := newRootCmd(settings, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if app.logger != nil {
			logger = app.logger
		}
		logger.Error("cfmeta failed", "err", err)
		os.Exit(1)
	}
}

// app is the state shared by the subcommands once flags are parsed.
type app struct {
	settings config.Settings
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
	rules    config.Rules
}

func newRootCmd(settings config.Settings, stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{settings: settings, stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:   "cfmeta",
		Short: "Inspect the CF coordinate structure of netCDF files.",
		Long: `cfmeta reads the dimension, scalar and auxiliary coordinates of
CF-conforming netCDF files and reports the axes of each data variable.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.startup() },
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.settings.LogLevel, "log-level", settings.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&a.settings.LogFormat, "log-format", settings.LogFormat, "log format: text or json")
	flags.StringVar(&a.settings.Output, "output", settings.Output, "report format: text or json")
	flags.StringVar(&a.settings.RulesFile, "rules", settings.RulesFile, "TOML file overriding the coordinate recognition rules")

	root.AddCommand(a.inspectCmd(), a.versionCmd())
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root, a
}

// startup builds the logger and loads the rules.
func (a *app) startup() error {
	logger, err := a.settings.Logger(a.stderr)
	if err != nil {
		return err
	}
	a.logger = logger
	a.rules = config.DefaultRules()
	if a.settings.RulesFile != "" {
		a.rules, err = config.LoadRules(a.settings.RulesFile)
		if err != nil {
			return err
		}
		a.logger.Debug("Loaded rules", "file", a.settings.RulesFile)
	}
	return nil
}

func (a *app) inspectCmd() *cobra.Command {
	var varNames []string
	cmd := &cobra.Command{
		Use:   "inspect <file.nc>",
		Short: "Report the coordinates and axes of the data variables in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(args[0], varNames)
		},
	}
	cmd.Flags().StringSliceVar(&varNames, "var", nil, "data variable to report; repeat for more (default: all)")
	return cmd
}

func (a *app) inspect(filePath string, varNames []string) error {
	r, err := ncmeta.Open(a.logger, filePath, a.rules)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer r.Close()
	a.logger.Info("netCDF summary", r.Summary()...)

	var vars []*datamodel.Variable
	if len(varNames) == 0 {
		vars, err = r.Variables()
		if err != nil {
			return err
		}
	} else {
		for _, name := range varNames {
			v, err := r.Variable(name)
			if err != nil {
				return err
			}
			vars = append(vars, v)
		}
	}
	return writeReport(a.stdout, a.settings.Output, vars)
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cfmeta",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "cfmeta v%s\n", Version)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
}
