package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"resume-cli/internal/document"
	"resume-cli/internal/format"
	"resume-cli/internal/model"
	"resume-cli/internal/publish"
	"resume-cli/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newViewCmd(app *App) *cobra.Command {
	var section string
	var width int
	out := newFormatFlag("md", "md", "markdown", "html", "term", "text", "txt", "json", "yaml")

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Render a resume document (md|html|term|text|json|yaml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := document.Load(args[0], cmd.InOrStdin())
			if err != nil {
				return writeErr(cmd, err)
			}
			as := out.String()
			if !cmd.Flags().Changed("format") && isTerminal(cmd.OutOrStdout()) {
				as = "term"
			}
			if width <= 0 {
				width = terminalWidth(cmd.OutOrStdout())
			}
			app.Log.Debug("view", "file", args[0], "format", as, "section", section)

			if section != "" {
				ft, err := model.ParseFormType(section)
				if err != nil {
					return writeErr(cmd, err)
				}
				if err := writeSection(cmd.OutOrStdout(), app, r, ft, as, width); err != nil {
					return writeErr(cmd, err)
				}
				return nil
			}

			w := cmd.OutOrStdout()
			switch as {
			case "term":
				_, err = fmt.Fprintln(w, tui.RenderMarkdown(publish.ResumeMarkdown(r), width, app.Config.MarkdownStyle))
			case "json", "yaml":
				err = format.Write(w, r, as, app.Pretty)
			default:
				err = publish.Write(w, r, as)
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}

	// Shadows the root's structured --format for this command.
	cmd.Flags().Var(out, "format", "Render format (md|html|term|text|json|yaml); default term on a TTY, else md")
	cmd.Flags().StringVar(&section, "section", "", "Render one section only (projects|skills)")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width for --format term (default: terminal width or 80)")
	return cmd
}

func writeSection(w io.Writer, app *App, r model.Resume, ft model.FormType, as string, width int) error {
	entries := r.Section(ft)
	var err error
	switch as {
	case "json", "yaml":
		err = format.Write(w, entries, as, app.Pretty)
	case "text", "txt":
		blocks := make([]string, 0, len(entries))
		for _, e := range entries {
			blocks = append(blocks, publish.Text(e))
		}
		if len(blocks) > 0 {
			_, err = fmt.Fprintln(w, strings.Join(blocks, "\n"))
		}
	case "html":
		var html string
		html, err = publish.HTML(publish.SectionMarkdown(ft, entries))
		if err == nil {
			_, err = io.WriteString(w, html)
		}
	case "term":
		_, err = fmt.Fprintln(w, tui.RenderMarkdown(publish.SectionMarkdown(ft, entries), width, app.Config.MarkdownStyle))
	default:
		_, err = io.WriteString(w, publish.SectionMarkdown(ft, entries))
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", ft, err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}
