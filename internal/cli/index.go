package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pinfile/internal/app"
)

type indexOptions struct {
	Manifest     string
	IndexURL     string
	Output       string
	User         string
	APIKey       string
	Workers      int
	HTTPTimeout  int
	HTTPRetries  int
	RetryDelayMs int
}

func newIndexCommand() *cobra.Command {
	opts := indexOptions{}
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Snapshot index entries for the manifest's pins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIndex(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "requirements.txt", "Manifest path")
	cmd.Flags().StringVar(&opts.IndexURL, "index-url", "https://pypi.org", "Package index base URL")
	cmd.Flags().StringVar(&opts.Output, "output", "index.yaml", "Snapshot output path")
	cmd.Flags().StringVar(&opts.User, "user", "", "Basic auth user")
	cmd.Flags().StringVar(&opts.APIKey, "api-key", "", "Basic auth key")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Fetch workers (0 = default)")
	cmd.Flags().IntVar(&opts.HTTPTimeout, "http-timeout", 0, "HTTP timeout in seconds")
	cmd.Flags().IntVar(&opts.HTTPRetries, "http-retries", 0, "HTTP retry count")
	cmd.Flags().IntVar(&opts.RetryDelayMs, "http-retry-delay-ms", 0, "HTTP retry base delay")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("index_url", cmd.Flags().Lookup("index-url"))
	_ = viper.BindPFlag("api_key", cmd.Flags().Lookup("api-key"))
	return cmd
}

func runIndex(ctx context.Context, cmd *cobra.Command, opts indexOptions) error {
	service := newAppService()
	result, err := service.IndexBuild(ctx, app.IndexBuildRequest{
		ManifestPath:     resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		IndexURL:         resolveString(cmd, opts.IndexURL, "index_url", "index-url"),
		OutputPath:       opts.Output,
		User:             opts.User,
		APIKey:           resolveString(cmd, opts.APIKey, "api_key", "api-key"),
		Workers:          resolveInt(cmd, opts.Workers, "workers", "workers"),
		HTTPTimeoutSec:   opts.HTTPTimeout,
		HTTPRetries:      opts.HTTPRetries,
		HTTPRetryDelayMs: opts.RetryDelayMs,
	})
	if err != nil {
		return err
	}
	fmt.Printf("indexed %d packages: %s\n", result.PackageCount, result.OutputPath)
	return nil
}
