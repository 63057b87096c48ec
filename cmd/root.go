// Package cmd implements the ytscribe command line interface.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "ytscribe [URL]",
	Short: "Transcribe the audio track of a YouTube video",
	Long: `ytscribe downloads the audio track of a YouTube video and produces a
text transcript with a pretrained speech-recognition model. Values not
supplied through flags are collected interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranscribe,
}

// Execute runs the root command. Errors have already been printed by the
// time it returns.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLog)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringP("format", "f", "", "output format: txt, json or srt")
	rootCmd.Flags().StringP("device", "d", "", "compute device: mps, cuda or cpu")
	rootCmd.Flags().StringP("language", "l", "", "language code, empty for auto-detect")
	rootCmd.Flags().StringP("model", "m", "", "whisper model name, e.g. base or large-v3")
}

func initLog() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
