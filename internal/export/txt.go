package export

import (
	"os"

	"github.com/sjzar/ytscribe/internal/speech"
)

func writeTXT(res *speech.Result, path string) error {
	return os.WriteFile(path, []byte(res.Text), 0o644)
}
