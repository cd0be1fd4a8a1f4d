package cli

import (
	"fmt"

	"resume-cli/internal/document"
	"resume-cli/internal/editor"

	"github.com/spf13/cobra"
)

func newEducationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "education",
		Short: "Add education history entries to a document",
	}
	cmd.AddCommand(newEducationAddCmd(app))
	return cmd
}

func newEducationAddCmd(app *App) *cobra.Command {
	var school, study, from, to string
	var write bool

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Add an education entry (dates as YYYY-MM)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := editor.ParseMonth(from)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("--from: %w", err))
			}
			end, err := editor.ParseMonth(to)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("--to: %w", err))
			}
			doc, err := document.Load(args[0], cmd.InOrStdin())
			if err != nil {
				return writeErr(cmd, err)
			}
			r := &doc
			item := editor.NewEducationEditor(editor.ResumeEducation{Resume: r}, app.Log).Add(editor.EducationInput{
				SchoolName:   school,
				TitleOfStudy: study,
				Start:        start,
				End:          end,
			})
			if err := emitUpdated(cmd, app, args[0], r, write, item); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&school, "school", "", "School name")
	cmd.Flags().StringVar(&study, "study", "", "Title of study")
	cmd.Flags().StringVar(&from, "from", "", "Start month (YYYY-MM)")
	cmd.Flags().StringVar(&to, "to", "", "End month (YYYY-MM); omit if ongoing")
	cmd.Flags().BoolVar(&write, "write", false, "Write the document back to <file> instead of printing it")
	return cmd
}
