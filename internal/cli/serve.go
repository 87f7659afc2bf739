package cli

import (
	"github.com/spf13/cobra"

	"modelkit/internal/config"
	"modelkit/internal/httpapi"
)

// NewServeCommand builds the servemodels command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "servemodels",
		Short:         "Serve the test page and models/ directory with CORS enabled",
		Example:       "  servemodels\n  servemodels --port 9000 --models-dir weights",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().String("host", config.DefaultHost, "Host to bind (defaults MODELKIT_HOST or localhost)")
	cmd.Flags().Int("port", config.DefaultPort, "Port to bind (defaults MODELKIT_PORT or 8000)")
	cmd.Flags().String("root", config.DefaultRoot, "Directory served at /")
	cmd.Flags().String("models-dir", config.DefaultModelsDir, "Models directory under --root; must exist")
	cmd.Flags().String("landing-page", config.DefaultLandingPage, "Page served for / and /index.html")
	cmd.Flags().String("metrics-path", "", "Expose Prometheus metrics at this path (disabled when empty)")
	addCommonFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		sc := cfg.Serve
		srv, err := httpapi.NewServer(httpapi.Options{
			Host:        stringFlag(cmd, "host", sc.Host),
			Port:        intFlag(cmd, "port", sc.Port),
			Root:        stringFlag(cmd, "root", sc.Root),
			ModelsDir:   stringFlag(cmd, "models-dir", sc.ModelsDir),
			LandingPage: stringFlag(cmd, "landing-page", sc.LandingPage),
			MetricsPath: stringFlag(cmd, "metrics-path", sc.MetricsPath),
			CORSMaxAge:  sc.CORSMaxAge,
			Logger:      NewLogger(cmd.OutOrStdout(), cfg.LogLevel),
		})
		if err != nil {
			return err
		}
		return srv.ListenAndServe(cmd.Context())
	}
	return cmd
}
