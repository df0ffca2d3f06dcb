package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ekta-240/provider-pulse/internal/cli"
	"github.com/ekta-240/provider-pulse/internal/format"
	"github.com/ekta-240/provider-pulse/internal/model"
)

func providersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List providers with confidence scores",
		RunE:  runProviders,
	}

	cmd.Flags().String("drift", "", "filter by drift bucket (High, Medium, Low)")

	return cmd
}

func runProviders(cmd *cobra.Command, _ []string) error {
	_, client, err := loadDeps()
	if err != nil {
		return err
	}

	providers, err := client.Providers(cmd.Context())
	if err != nil {
		return err
	}

	drift, _ := cmd.Flags().GetString("drift")
	if drift != "" {
		filtered := make([]model.Provider, 0, len(providers))
		for _, p := range providers {
			if strings.EqualFold(p.Drift.Bucket, drift) {
				filtered = append(filtered, p)
			}
		}
		providers = filtered
	}

	if len(providers) == 0 {
		fmt.Println(cli.FormatInfo("No providers found"))
		return nil
	}

	header := fmt.Sprintf("%-28s %-20s %-14s %8s  %-10s %s",
		"NAME", "SPECIALTY", "PHONE", "PCS", "BAND", "DRIFT")
	fmt.Println(cli.TableHeaderStyle.Render(header))

	for _, p := range providers {
		row := fmt.Sprintf("%-28s %-20s %-14s %8s  %-10s %s",
			format.Truncate(p.Name, 28),
			format.Truncate(p.Specialty, 20),
			p.Phone,
			format.Score(p.PCS.Score),
			p.PCS.Band,
			driftCell(p.Drift.Bucket),
		)
		fmt.Println(row)
	}

	fmt.Println()
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d providers", len(providers))))
	return nil
}

func driftCell(bucket string) string {
	switch bucket {
	case model.DriftHigh:
		return cli.ErrorStyle.Render(bucket)
	case model.DriftMedium:
		return cli.WarningStyle.Render(bucket)
	case model.DriftLow:
		return cli.SuccessStyle.Render(bucket)
	default:
		return bucket
	}
}
