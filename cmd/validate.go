package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"region-cards/core/dataset"
	"region-cards/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errIssuesFound is returned when verification finds data-quality problems.
var errIssuesFound = errors.New("issues found - fix and re-run")

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the quick verification pass over a dataset",
	Long:  `Checks that the data files exist, that every item's image exists, and that the images in the resources directory match the images referenced by the items. Outputs metrics by default or a detailed JSON report with --json flag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		jsonOutput, _ := cmd.Flags().GetBool("json")

		client, err := newStorageClient(cfg)
		if err != nil {
			return err
		}
		svc := integrity.NewService(client, logg)

		report, err := runVerification(svc, cfg.Dataset, logg)
		if err != nil {
			return err
		}

		printMetrics(report)

		if jsonOutput {
			filename := fmt.Sprintf("verification_%d.json", time.Now().Unix())
			if err := writeJSON(filename, report); err != nil {
				return err
			}
			logg.Info("Detailed JSON report saved", zap.String("file", filename))
		}

		if !report.Valid {
			return errIssuesFound
		}

		logg.Info("Validation passed.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "Save a detailed JSON report")
}

// runVerification checks the data files and then runs the full verification pass.
func runVerification(svc *integrity.Service, cfg dataset.Config, logg *zap.Logger) (*integrity.Report, error) {
	logg.Info("Checking data files...", zap.String("dir", cfg.Dir))
	missing, err := svc.CheckDataFiles(cfg)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		logg.Warn("Missing data files detected", zap.Strings("missing", missing))
		return nil, fmt.Errorf("missing data files in %s: %v", cfg.Dir, missing)
	}

	logg.Info("Running quick verification...")
	report, err := svc.Verify(cfg)
	if err != nil {
		return nil, err
	}

	logg.Info("Verification completed",
		zap.Int("items", report.TotalItems),
		zap.Int("missing_images", len(report.MissingImages)),
		zap.Int("stray_images", len(report.Images.Stray)),
		zap.Int("unreferenced_images", len(report.Images.Missing)),
		zap.Bool("valid", report.Valid),
	)

	return report, nil
}

func printMetrics(report *integrity.Report) {
	fmt.Println("\n=== Dataset Verification Metrics ===")
	fmt.Printf("Directory: %s\n", report.Dir)
	fmt.Printf("Total Items: %d\n", report.TotalItems)
	fmt.Printf("Items With Missing Image: %d\n", len(report.MissingImages))
	fmt.Printf("Stray Image Files: %d\n", len(report.Images.Stray))
	fmt.Printf("Referenced Images Not In Directory: %d\n", len(report.Images.Missing))
	fmt.Printf("Valid: %t\n", report.Valid)
	fmt.Printf("Execution Time: %s\n", report.ExecutionTime)
}

func writeJSON(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save JSON file: %w", err)
	}
	return nil
}
