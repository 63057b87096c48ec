package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sjzar/ytscribe/internal/export"
	"github.com/sjzar/ytscribe/internal/ytscribe"
	"github.com/sjzar/ytscribe/internal/ytscribe/conf"
)

const previewLimit = 500

// runTranscribe drives one interactive fetch → transcribe → save pass.
// Stage failures are printed and the process still exits zero.
func runTranscribe(cmd *cobra.Command, args []string) error {
	cfg, err := conf.Load(configPath)
	if err != nil {
		return err
	}

	prompt := newPrompter(os.Stdin, os.Stdout)

	videoURL := ""
	if len(args) > 0 {
		videoURL = args[0]
	} else {
		videoURL = prompt.askURL()
	}
	if videoURL == "" {
		fmt.Println("No URL provided. Exiting.")
		return nil
	}

	formatFlag, _ := cmd.Flags().GetString("format")
	var format export.Format
	switch formatFlag {
	case "":
		format = export.ParseChoice(prompt.askFormat())
	case "json":
		format = export.FormatJSON
	case "srt":
		format = export.FormatSRT
	default:
		format = export.FormatTXT
	}

	device, _ := cmd.Flags().GetString("device")
	if device == "" && cfg.Speech.Device == "" && cfg.Speech.Backend == conf.BackendLocal {
		device = prompt.askDevice()
	}

	language, _ := cmd.Flags().GetString("language")
	if language == "" && cfg.Speech.Language == "" {
		language = prompt.askLanguage()
	}

	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Speech.Model = model
	}

	app, err := ytscribe.New(cfg)
	if err != nil {
		return err
	}

	result, err := app.Run(cmd.Context(), ytscribe.RunRequest{
		URL:      videoURL,
		Format:   format,
		Device:   device,
		Language: language,
	})
	if err != nil {
		log.Error().Err(err).Msg("run aborted")
		fmt.Printf("Error: %v\n", err)
		return nil
	}

	fmt.Println("\n--- Transcription Preview ---")
	fmt.Println(preview(result.Transcript.Text))
	fmt.Printf("Transcription saved as %s\n", result.OutputPath)
	return nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}
