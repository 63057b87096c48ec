package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sjzar/ytscribe/internal/speech/models"
	"github.com/sjzar/ytscribe/internal/ytscribe/conf"
	"github.com/sjzar/ytscribe/pkg/util"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available whisper models and their download state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := conf.Load(configPath)
		if err != nil {
			return err
		}
		for _, opt := range models.CatalogWithState(cfg.Speech.ModelDir) {
			state := " "
			if opt.Downloaded {
				state = "*"
			}
			fmt.Printf("%s %-16s %-8s %s\n", state, opt.ID, opt.SizeLabel, opt.Description)
		}
		fmt.Printf("\nmodel directory: %s (* = downloaded)\n", cfg.Speech.ModelDir)
		return nil
	},
}

var modelsDownloadCmd = &cobra.Command{
	Use:   "download <name>",
	Short: "Download a whisper model into the local cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := conf.Load(configPath)
		if err != nil {
			return err
		}
		client, err := util.NewHTTPClient(30*time.Minute, cfg.Network.CABundle)
		if err != nil {
			return err
		}
		res, err := models.NewDownloader(cfg.Speech.ModelDir, client).EnsureModel(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if res.Existed {
			fmt.Printf("%s already present\n", res.Path)
		} else {
			fmt.Printf("downloaded %s\n", res.Path)
		}
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsDownloadCmd)
	rootCmd.AddCommand(modelsCmd)
}
