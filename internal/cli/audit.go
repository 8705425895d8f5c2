package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pinfile/internal/app"
)

type auditOptions struct {
	Manifest  string
	Index     string
	Strict    bool
	OutputDir string
}

func newAuditCommand() *cobra.Command {
	opts := auditOptions{}
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check pins for mutual resolvability against an index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAudit(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "requirements.txt", "Manifest path")
	cmd.Flags().StringVar(&opts.Index, "index", "", "Index snapshot file")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Treat warnings as errors")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Report output directory")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("index", cmd.Flags().Lookup("index"))
	return cmd
}

func runAudit(ctx context.Context, cmd *cobra.Command, opts auditOptions) error {
	service := newAppService()
	result, err := service.Audit(ctx, app.AuditRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		IndexPath:    resolveString(cmd, opts.Index, "index", "index"),
		Strict:       resolveBool(cmd, opts.Strict, "strict", "strict"),
		OutputDir:    opts.OutputDir,
	})
	printFindings(result.Findings)
	if err != nil {
		return err
	}
	fmt.Printf("resolvable: %d pins\n", result.PinCount)
	return nil
}
