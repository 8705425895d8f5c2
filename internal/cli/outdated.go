package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pinfile/internal/app"
)

type outdatedOptions struct {
	Manifest  string
	Index     string
	OutputDir string
}

func newOutdatedCommand() *cobra.Command {
	opts := outdatedOptions{}
	cmd := &cobra.Command{
		Use:   "outdated",
		Short: "List pins lagging the newest index release",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOutdated(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "requirements.txt", "Manifest path")
	cmd.Flags().StringVar(&opts.Index, "index", "", "Index snapshot file")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Report output directory")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("index", cmd.Flags().Lookup("index"))
	return cmd
}

func runOutdated(cmd *cobra.Command, opts outdatedOptions) error {
	service := newAppService()
	result, err := service.Outdated(cmd.Context(), app.OutdatedRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		IndexPath:    resolveString(cmd, opts.Index, "index", "index"),
		OutputDir:    opts.OutputDir,
	})
	if err != nil {
		return err
	}

	for _, entry := range result.Report.Entries {
		fmt.Printf("%s %s -> %s\n", entry.Package, entry.Pinned, entry.Latest)
	}
	if len(result.Report.Unknown) > 0 {
		fmt.Printf("not in index: %s\n", strings.Join(result.Report.Unknown, ", "))
	}
	fmt.Printf("outdated: %d, current: %d\n", len(result.Report.Entries), result.Report.Current)
	return nil
}
