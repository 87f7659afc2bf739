package cli

import (
	"github.com/spf13/cobra"

	"modelkit/internal/bundle"
	"modelkit/pkg/types"
)

// NewBundleCommand builds the bundlemodel command. A nil bundler selects the
// built-in .task writer.
func NewBundleCommand(b bundle.Bundler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundlemodel",
		Short: "Bundle a TFLite model with its tokenizer into a .task file",
		Example: "  bundlemodel --tflite model.tflite --tokenizer tokenizer.model --output gemma_custom.task\n" +
			"  bundlemodel --tflite m.tflite --tokenizer t.model --output m.task --model-type gemma --stop-tokens '<eos>' --stop-tokens '<end_of_turn>'",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().String("tflite", "", "Path to TFLite model file")
	cmd.Flags().String("tokenizer", "", "Path to tokenizer.model file (SentencePiece format)")
	cmd.Flags().String("output", "", "Output path for .task bundle")
	cmd.Flags().String("model-type", string(bundle.DefaultFamily), "Model type for default token configuration: gemma|gemma2|gemma3")
	cmd.Flags().String("start-token", "", "Override start token (default: <bos>)")
	cmd.Flags().StringArray("stop-tokens", nil, "Override stop tokens, one token per flag and repeatable (default: <eos> <end_of_turn>)")
	addCommonFlags(cmd)
	for _, f := range []string{"tflite", "tokenizer", "output"} {
		_ = cmd.MarkFlagRequired(f)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := NewLogger(cmd.OutOrStdout(), cfg.LogLevel)

		family, err := bundle.ParseFamily(stringFlag(cmd, "model-type", cfg.Bundle.ModelType))
		if err != nil {
			return err
		}
		req := types.BundleRequest{
			WeightsPath:   stringFlag(cmd, "tflite", ""),
			TokenizerPath: stringFlag(cmd, "tokenizer", ""),
			OutputPath:    stringFlag(cmd, "output", ""),
			Family:        family,
			StartToken:    stringFlag(cmd, "start-token", cfg.Bundle.StartToken),
			StopTokens:    stringArrayFlag(cmd, "stop-tokens", cfg.Bundle.StopTokens),
		}
		_, err = bundle.NewComposer(b, log).Compose(cmd.Context(), req)
		return err
	}
	return cmd
}
