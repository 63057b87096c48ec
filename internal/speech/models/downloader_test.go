package models

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeModelName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"base", "ggml-base.bin"},
		{"small.en", "ggml-small.en.bin"},
		{"ggml-tiny.bin", "ggml-tiny.bin"},
		{"large-v3.bin", "ggml-large-v3.bin"},
		{" medium ", "ggml-medium.bin"},
		{"", DefaultModel},
	}
	for _, tt := range tests {
		if got := NormalizeModelName(tt.in); got != tt.want {
			t.Errorf("NormalizeModelName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnsureModelDownloadsOnce(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("weights"))
	}))
	defer server.Close()

	dir := t.TempDir()
	d := NewDownloader(dir, server.Client())
	d.baseURL = server.URL + "/"

	res, err := d.EnsureModel(context.Background(), "tiny")
	if err != nil {
		t.Fatal(err)
	}
	if res.Existed {
		t.Fatal("first ensure reported existing model")
	}
	if res.Path != filepath.Join(dir, "ggml-tiny.bin") {
		t.Fatalf("path = %q", res.Path)
	}
	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "weights" {
		t.Fatalf("content = %q", data)
	}

	res, err = d.EnsureModel(context.Background(), "tiny")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Existed {
		t.Fatal("second ensure should find the cached model")
	}
	if requests != 1 {
		t.Fatalf("upstream requests = %d, want 1", requests)
	}
}

func TestEnsureModelUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	d := NewDownloader(t.TempDir(), server.Client())
	d.baseURL = server.URL + "/"

	if _, err := d.EnsureModel(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for missing upstream model")
	}
}

func TestCatalogWithState(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ggml-tiny.bin"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, opt := range CatalogWithState(dir) {
		if opt.ID == "tiny" && !opt.Downloaded {
			t.Error("tiny should be marked downloaded")
		}
		if opt.ID == "base" && opt.Downloaded {
			t.Error("base should not be marked downloaded")
		}
	}
}
