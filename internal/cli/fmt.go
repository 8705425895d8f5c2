package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pinfile/internal/app"
)

type fmtOptions struct {
	Manifest string
	Write    bool
}

func newFmtCommand() *cobra.Command {
	opts := fmtOptions{}
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Canonicalize a manifest (sorted, normalized names)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFmt(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "requirements.txt", "Manifest path")
	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Rewrite the manifest in place")
	return cmd
}

func runFmt(cmd *cobra.Command, opts fmtOptions) error {
	service := newAppService()
	result, err := service.Format(cmd.Context(), app.FormatRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Write:        opts.Write,
	})
	if err != nil {
		return err
	}
	if opts.Write {
		if result.Changed {
			fmt.Println("rewritten")
		} else {
			fmt.Println("already canonical")
		}
		return nil
	}
	fmt.Print(result.Rendered)
	return nil
}
