package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pinfile/internal/app"
	"pinfile/internal/types"
)

type diffOptions struct {
	Before    string
	After     string
	OutputDir string
}

func newDiffCommand() *cobra.Command {
	opts := diffOptions{}
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Diff two manifests pin by pin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiff(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Before, "before", "", "Manifest before the change")
	cmd.Flags().StringVar(&opts.After, "after", "", "Manifest after the change")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Report output directory")
	return cmd
}

func runDiff(cmd *cobra.Command, opts diffOptions) error {
	service := newAppService()
	result, err := service.Diff(cmd.Context(), app.DiffRequest{
		BeforePath: opts.Before,
		AfterPath:  opts.After,
		OutputDir:  opts.OutputDir,
	})
	if err != nil {
		return err
	}

	if len(result.Report.Entries) == 0 {
		fmt.Println("no pin changes")
		return nil
	}
	for _, entry := range result.Report.Entries {
		switch entry.Action {
		case types.DiffAdded:
			fmt.Printf("+ %s==%s\n", entry.Package, entry.ToVersion)
		case types.DiffRemoved:
			fmt.Printf("- %s==%s\n", entry.Package, entry.FromVersion)
		default:
			fmt.Printf("~ %s %s -> %s (%s)\n", entry.Package, entry.FromVersion, entry.ToVersion, entry.Action)
		}
	}
	return nil
}
