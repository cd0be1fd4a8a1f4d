package cli

import (
	"resume-cli/internal/document"

	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a resume document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := document.Load(args[0], cmd.InOrStdin())
			if err != nil {
				if !document.IsValidationError(err) {
					return writeErr(cmd, err)
				}
				problems := document.Problems(err)
				if werr := writeOut(cmd, app, map[string]any{"ok": false, "problems": problems}); werr != nil {
					return writeErr(cmd, werr)
				}
				return writeErr(cmd, invalidDocumentError{path: args[0], problems: len(problems)})
			}
			return writeOut(cmd, app, map[string]any{
				"ok": true,
				"counts": map[string]int{
					"education": len(r.PopulatedEducation()),
					"projects":  len(r.Projects),
					"skills":    len(r.Skills),
				},
			})
		},
	}
}
