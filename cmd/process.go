package cmd

import (
	"fmt"
	"time"

	"region-cards/core/config"
	"region-cards/core/storage"
	"region-cards/feature/integrity"
	"region-cards/feature/regions"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Verify a dataset and emit its normalized records",
	Long:  `Runs the quick verification pass and, when it succeeds, streams every normalized record. With --json the records are saved for the flashcard packager.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		skipVerify, _ := cmd.Flags().GetBool("skip-verify")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		client, err := newStorageClient(cfg)
		if err != nil {
			return err
		}
		svc := integrity.NewService(client, logg)

		if !skipVerify {
			report, err := runVerification(svc, cfg.Dataset, logg)
			if err != nil {
				return err
			}
			if !report.Valid {
				printMetrics(report)
				return errIssuesFound
			}
			logg.Info("Validation passed. Proceeding with further processing...")
		}

		records := []regions.NormalizedItem{}
		processed, err := svc.Process(cfg.Dataset, func(item regions.NormalizedItem) error {
			if jsonOutput {
				records = append(records, item)
			}
			return nil
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			filename := fmt.Sprintf("records_%d.json", time.Now().Unix())
			if err := writeJSON(filename, records); err != nil {
				return err
			}
			logg.Info("Normalized records saved", zap.String("file", filename), zap.Int("records", len(records)))
		}

		logg.Info("Processing completed", zap.Int("records", processed))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(processCmd)
	processCmd.Flags().Bool("skip-verify", false, "Skip the verification pass")
	processCmd.Flags().Bool("json", false, "Save normalized records as JSON")
}

func newStorageClient(cfg *config.Config) (storage.Client, error) {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}
