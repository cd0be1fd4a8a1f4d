package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"resume-cli/internal/document"
	"resume-cli/internal/format"
	"resume-cli/internal/model"
	"resume-cli/internal/publish"
	"resume-cli/internal/tui"

	"github.com/spf13/cobra"
)

// runTUI is swapped out in tests.
var runTUI = tui.Run

func newEditCmd(app *App) *cobra.Command {
	var emit string
	var out string

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the interactive editor, optionally seeded from a JSON/YAML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runEdit(cmd, app, path, emit, out)
		},
	}

	cmd.Flags().StringVar(&emit, "emit", "", "Print the resume on exit (md|json|yaml)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the resume to this file on exit (.json|.yaml|.yml)")
	return cmd
}

func runEdit(cmd *cobra.Command, app *App, path, emit, out string) error {
	switch emit {
	case "", "md", "markdown", "json", "yaml", "yml":
	default:
		return writeErr(cmd, fmt.Errorf("invalid --emit: %q (expected md|json|yaml)", emit))
	}

	r := tui.NewResume(app.Config.Name)
	if path != "" {
		doc, err := document.Load(path, cmd.InOrStdin())
		if err != nil {
			return writeErr(cmd, err)
		}
		r = &doc
	}
	app.Log.Info("edit session start", "file", path,
		"projects", len(r.Projects), "skills", len(r.Skills), "education", len(r.PopulatedEducation()))

	if err := runTUI(r, tui.Options{
		Theme:         app.Config.Theme,
		MarkdownStyle: app.Config.MarkdownStyle,
		Logger:        app.Log,
	}); err != nil {
		return writeErr(cmd, err)
	}
	app.Log.Info("edit session end",
		"projects", len(r.Projects), "skills", len(r.Skills), "education", len(r.PopulatedEducation()))

	if out != "" {
		if err := saveDocument(out, *r, app.Pretty); err != nil {
			return writeErr(cmd, err)
		}
	}
	switch emit {
	case "":
		return nil
	case "md", "markdown":
		return publish.Write(cmd.OutOrStdout(), *r, "md")
	default:
		return format.Write(cmd.OutOrStdout(), r, emit, app.Pretty)
	}
}

// saveDocument writes r as JSON or YAML (by extension) through a temp file.
func saveDocument(path string, r model.Resume, pretty bool) error {
	if path == "" {
		return errors.New("missing output path")
	}
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if err := format.Write(f, r, document.FormatForPath(path), pretty); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
