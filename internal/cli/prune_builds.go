package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"artifactory-cleanup/internal/app"
	"artifactory-cleanup/internal/shared"
	"artifactory-cleanup/internal/types"
)

type pruneBuildsOptions struct {
	ConfigPath    string
	InventoryPath string
	Repository    string
	OutputDir     string
	DateField     string
	DryRun        bool
}

func newPruneBuildsCommand() *cobra.Command {
	opts := pruneBuildsOptions{}
	cmd := &cobra.Command{
		Use:   "prune-builds",
		Short: "Delete whole build folders whose files are all past the threshold",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPruneBuilds(cmd.Context(), cmd, opts)
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

func runPruneBuilds(ctx context.Context, cmd *cobra.Command, opts pruneBuildsOptions) error {
	service := newAppService()
	inventory := resolveString(cmd, opts.InventoryPath, "inventory", "inventory")
	repository := resolveString(cmd, opts.Repository, "repo", "repo")
	if inventory == "" && repository == "" {
		inventory = defaultInventoryFile
	}
	result, err := service.PruneBuilds(ctx, app.PruneBuildsRequest{
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

	printFolderTable("folders to be deleted", result.ToDelete)
	printFolderTable("folders not selected for deletion", result.NotSelected)
	if len(result.ToDelete) > 0 {
		var totalFiles int
		var totalSize int64
		for _, folder := range result.ToDelete {
			totalFiles += folder.FileCount
			totalSize += folder.SizeBytes
		}
		fmt.Printf("summary: %d folder(s), %d file(s), %.2f MB\n",
			len(result.ToDelete), totalFiles, shared.SizeMB(totalSize))
	}
	if result.SpecPath != "" {
		fmt.Printf("spec: %s\n", result.SpecPath)
	}
	if result.DryRun {
		fmt.Println("dry-run: no deletion executed")
	} else if result.Executed {
		fmt.Println("build folders deleted")
	}
	return nil
}

func printFolderTable(title string, folders []types.BuildFolderSummary) {
	if len(folders) == 0 {
		fmt.Printf("%s: none\n", title)
		return
	}
	fmt.Printf("%s:\n", title)
	for i, folder := range folders {
		fmt.Printf("%3d. %s files=%d size=%.2fMB oldest=(%dd) %s newest=(%dd) %s\n",
			i+1, folder.Folder, folder.FileCount, shared.SizeMB(folder.SizeBytes),
			folder.OldestDays, folder.OldestFile,
			folder.NewestDays, folder.NewestFile)
		if folder.Reason != "" {
			fmt.Printf("     %s\n", folder.Reason)
		}
	}
}
