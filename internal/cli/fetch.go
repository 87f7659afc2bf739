package cli

import (
	"time"

	"github.com/spf13/cobra"

	"modelkit/internal/config"
	"modelkit/internal/hub"
	"modelkit/pkg/types"
)

// ClientFactory builds the hub client from the effective fetch settings.
type ClientFactory func(cfg config.FetchConfig) hub.Client

// DefaultClientFactory returns an HTTP client for cfg.Endpoint.
func DefaultClientFactory(cfg config.FetchConfig) hub.Client {
	return hub.NewHTTPClient(cfg.Endpoint, time.Duration(cfg.TimeoutSeconds)*time.Second)
}

// NewFetchCommand builds the fetchmodels command. Nil arguments select the
// HTTP client and the locally stored hub credential.
func NewFetchCommand(newClient ClientFactory, tokens hub.TokenSource) *cobra.Command {
	if newClient == nil {
		newClient = DefaultClientFactory
	}
	if tokens == nil {
		tokens = hub.DefaultTokenSource()
	}
	cmd := &cobra.Command{
		Use:   "fetchmodels",
		Short: "Download pre-bundled models in .task, .litertlm and .bin formats",
		Long: "Download pre-converted models from the hub. Without flags the recommended\n" +
			"pair (one .task and one .litertlm model) is downloaded.",
		Example:       "  fetchmodels --list\n  fetchmodels --model gemma3-1b-task\n  fetchmodels --format litertlm --output-dir ./models\n  fetchmodels --all",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().String("model", "", "Specific model to download (use --list to see options)")
	cmd.Flags().Bool("list", false, "List available models")
	cmd.Flags().String("output-dir", config.DefaultOutputDir, "Output directory for models")
	cmd.Flags().String("format", "", "Download all models of a specific format: task|litertlm|bin")
	cmd.Flags().Bool("all", false, "Download all available models")
	addCommonFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg.Fetch.OutputDir = stringFlag(cmd, "output-dir", cfg.Fetch.OutputDir)
		log := NewLogger(cmd.OutOrStdout(), cfg.LogLevel)

		var format types.Format
		if v, _ := cmd.Flags().GetString("format"); v != "" {
			if format, err = hub.ParseFormat(v); err != nil {
				return err
			}
		}

		f := hub.NewFetcher(newClient(cfg.Fetch), hub.Options{
			OutputDir: cfg.Fetch.OutputDir,
			Revision:  cfg.Fetch.Revision,
			Tokens:    tokens,
			Out:       cmd.OutOrStdout(),
			Logger:    log,
		})
		ctx := cmd.Context()

		if list, _ := cmd.Flags().GetBool("list"); list {
			f.List()
			return nil
		}
		if all, _ := cmd.Flags().GetBool("all"); all {
			f.FetchAll(ctx)
			return nil
		}
		if format != "" {
			f.FetchAll(ctx, format)
			return nil
		}
		if key, _ := cmd.Flags().GetString("model"); key != "" {
			_, err := f.Fetch(ctx, key)
			return err
		}
		f.FetchRecommended(ctx)
		return nil
	}
	return cmd
}
