package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ekta-240/provider-pulse/internal/cli"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run a validation batch",
		Long: `Trigger a synchronous validation batch on the backend and wait for it
to finish. The run validates every provider, recomputes confidence
scores, and refills the manual review queue.`,
		RunE: runBatch,
	}

	cmd.Flags().StringP("type", "t", "", "batch type (daily, full)")
	_ = viper.BindPFlag("batch.type", cmd.Flags().Lookup("type"))

	return cmd
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, client, err := loadDeps()
	if err != nil {
		return err
	}

	batchType := cfg.Batch.Type

	fmt.Println(cli.FormatTitle("Running validation batch"))
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("type: %s", batchType)))

	// Ctrl+C stops waiting, not the run: the backend finishes on its own.
	handler := cli.NewInterruptHandler(os.Stdout)
	ctx := handler.HandleInterrupts(cmd.Context(), true)

	start := time.Now()
	if err := client.RunBatch(ctx, batchType); err != nil {
		if handler.WasInterrupted() {
			return nil
		}
		fmt.Println(cli.FormatError("Batch run failed"))
		return err
	}

	summary := fmt.Sprintf("type:     %s\nduration: %s", batchType, time.Since(start).Round(time.Second))
	fmt.Println(cli.RenderBox("Batch complete", summary))
	return nil
}
