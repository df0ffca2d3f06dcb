package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ekta-240/provider-pulse/internal/cli"
	"github.com/ekta-240/provider-pulse/internal/format"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Download the latest validation report",
		Long: `Download the most recent validation report from the backend and save
it to the current directory. The file extension follows the report's
content type.`,
		RunE: runReport,
	}

	cmd.Flags().StringP("output", "o", "", "output file (default: validation_report_<date>.<ext>)")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	_, client, err := loadDeps()
	if err != nil {
		return err
	}

	report, err := client.LatestReport(cmd.Context())
	if err != nil {
		fmt.Println(cli.FormatError("Report download failed"))
		return err
	}
	defer func() { _ = report.Body.Close() }()

	filename, _ := cmd.Flags().GetString("output")
	if filename == "" {
		filename = format.ReportFilename(time.Now(), report.ContentType)
	}

	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer func() { _ = out.Close() }()

	bar := progressbar.DefaultBytes(report.ContentLength, "downloading")
	if _, err := io.Copy(io.MultiWriter(out, bar), report.Body); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Report saved to %s", filename)))
	return nil
}
