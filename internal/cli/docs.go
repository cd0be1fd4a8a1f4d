package cli

import (
	"fmt"

	"resume-cli/internal/docs"
	"resume-cli/internal/tui"

	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation (document, keys, config)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"topics": docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `resume docs` to list topics)", topic))
			}
			if !raw && isTerminal(cmd.OutOrStdout()) {
				body = tui.RenderMarkdown(body, terminalWidth(cmd.OutOrStdout()), app.Config.MarkdownStyle) + "\n"
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), body)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown even on a terminal")
	return cmd
}
