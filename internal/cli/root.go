package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"resume-cli/internal/config"
	"resume-cli/internal/format"
	"resume-cli/internal/logging"

	"github.com/spf13/cobra"
)

type App struct {
	Format   *formatFlag
	Pretty   bool
	LogLevel string

	Config *config.Config
	Log    *slog.Logger

	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{
		Format: newFormatFlag(envOr("RESUME_FORMAT", "json"), "json", "yaml"),
	}

	cmd := &cobra.Command{
		Use:          "resume",
		Short:        "Resume builder: interactive editor plus render/check commands",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive editor with an empty resume
  resume

  # Edit an existing document and print the result as markdown on exit
  resume edit cv.yaml --emit md

  # Render a document (shortcut for: resume view cv.json)
  resume cv.json
  resume view cv.json --format html > cv.html

  # Validate a document
  resume check cv.yaml
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive editor.
			if len(args) == 0 {
				return runEdit(cmd, app, "", "", "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return writeErr(cmd, err)
		}
		if app.LogLevel != "" {
			cfg.LogLevel = app.LogLevel
		}
		log, closeLog, err := logging.New(logging.Options{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			File:   cfg.LogFile,
		})
		if err != nil {
			return writeErr(cmd, err)
		}
		app.Config = cfg
		app.Log = log.With("cmd", cmd.CommandPath())
		app.closeLog = closeLog
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog == nil {
			return nil
		}
		return app.closeLog()
	}

	cmd.PersistentFlags().Var(app.Format, "format", "Output format for structured output (json|yaml)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("RESUME_LOG_LEVEL", ""), "Log level (debug|info|warn|error); logs go to RESUME_LOG_FILE")

	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newEntriesCmd(app))
	cmd.AddCommand(newEducationCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format.String(), app.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
