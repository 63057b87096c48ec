package ytscribe

import (
	"context"
	"errors"
	"testing"

	"github.com/sjzar/ytscribe/internal/export"
	"github.com/sjzar/ytscribe/internal/ytscribe/conf"
)

func TestRunEmptyURLAborts(t *testing.T) {
	app, err := New(&conf.Config{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = app.Run(context.Background(), RunRequest{Format: export.FormatTXT})
	if !errors.Is(err, ErrEmptyURL) {
		t.Fatalf("err = %v, want ErrEmptyURL", err)
	}
}
