package models

import (
	"os"
	"path/filepath"
)

// Option describes one downloadable whisper.cpp model preset.
type Option struct {
	ID          string
	FileName    string
	SizeLabel   string
	Description string
	Downloaded  bool
	LocalPath   string
}

// Catalog lists the official ggml presets in ascending size order.
func Catalog() []Option {
	return []Option{
		{ID: "tiny", FileName: "ggml-tiny.bin", SizeLabel: "75 MB", Description: "fastest, lowest accuracy"},
		{ID: "tiny.en", FileName: "ggml-tiny.en.bin", SizeLabel: "75 MB", Description: "tiny, English only"},
		{ID: "base", FileName: "ggml-base.bin", SizeLabel: "142 MB", Description: "good speed/accuracy balance"},
		{ID: "base.en", FileName: "ggml-base.en.bin", SizeLabel: "142 MB", Description: "base, English only"},
		{ID: "small", FileName: "ggml-small.bin", SizeLabel: "466 MB", Description: "better accuracy"},
		{ID: "small.en", FileName: "ggml-small.en.bin", SizeLabel: "466 MB", Description: "small, English only"},
		{ID: "medium", FileName: "ggml-medium.bin", SizeLabel: "1.5 GB", Description: "high accuracy"},
		{ID: "large-v3", FileName: "ggml-large-v3.bin", SizeLabel: "2.9 GB", Description: "best accuracy, slowest"},
		{ID: "large-v3-turbo", FileName: "ggml-large-v3-turbo.bin", SizeLabel: "1.5 GB", Description: "near large-v3 accuracy, much faster"},
	}
}

// CatalogWithState annotates the catalog with download state from dir.
func CatalogWithState(dir string) []Option {
	options := Catalog()
	for i := range options {
		path := filepath.Join(dir, options[i].FileName)
		if info, err := os.Stat(path); err == nil && info.Size() > 0 {
			options[i].Downloaded = true
			options[i].LocalPath = path
		}
	}
	return options
}
