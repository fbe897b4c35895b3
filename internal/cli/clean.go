package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"artifactory-cleanup/internal/app"
	"artifactory-cleanup/internal/shared"
)

const defaultInventoryFile = "repo_files.json"

type cleanOptions struct {
	ConfigPath    string
	InventoryPath string
	Repository    string
	OutputDir     string
	DateField     string
	DryRun        bool
}

func newCleanCommand() *cobra.Command {
	opts := cleanOptions{}
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete stale files under the configured cleanup target paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "cleanup-config.yaml", "Cleanup policy config file")
	cmd.Flags().StringVar(&opts.InventoryPath, "inventory", "", "Pre-fetched inventory JSON file")
	cmd.Flags().StringVar(&opts.Repository, "repo", "", "Repository name to fetch the inventory from")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", ".", "Directory for run-scoped spec output")
	cmd.Flags().StringVar(&opts.DateField, "date-field", "created", "Date field for age calculation (created|modified|updated)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", true, "Write specs without invoking the delete command")

	_ = viper.BindPFlag("config", cmd.Flags().Lookup("config"))
	_ = viper.BindPFlag("inventory", cmd.Flags().Lookup("inventory"))
	_ = viper.BindPFlag("repo", cmd.Flags().Lookup("repo"))
	_ = viper.BindPFlag("output_dir", cmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("date_field", cmd.Flags().Lookup("date-field"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runClean(ctx context.Context, cmd *cobra.Command, opts cleanOptions) error {
	service := newAppService()
	inventory := resolveString(cmd, opts.InventoryPath, "inventory", "inventory")
	repository := resolveString(cmd, opts.Repository, "repo", "repo")
	if inventory == "" && repository == "" {
		inventory = defaultInventoryFile
	}
	result, err := service.Cleanup(ctx, app.CleanupRequest{
		ConfigPath:    resolveString(cmd, opts.ConfigPath, "config", "config"),
		InventoryPath: inventory,
		Repository:    repository,
		OutputDir:     resolveString(cmd, opts.OutputDir, "output_dir", "output-dir"),
		DateField:     resolveString(cmd, opts.DateField, "date_field", "date-field"),
		DryRun:        resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("eligible files: %d\n", result.Eligible)
	if result.SkippedMissingDate > 0 {
		fmt.Printf("skipped (missing date field): %d\n", result.SkippedMissingDate)
	}
	fmt.Printf("space to free: %.2f MB\n", shared.SizeMB(result.TotalSizeBytes))
	for _, path := range result.SpecPaths {
		fmt.Printf("- spec: %s\n", path)
	}
	if result.DryRun {
		fmt.Printf("dry-run: wrote %d spec(s), no deletion executed\n", len(result.SpecPaths))
		return nil
	}
	fmt.Printf("executed batches: %d of %d\n", result.ExecutedBatches, len(result.SpecPaths))
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || name == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
