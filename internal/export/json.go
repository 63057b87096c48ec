package export

import (
	"encoding/json"
	"os"

	"github.com/sjzar/ytscribe/internal/speech"
)

// writeJSON emits the whole result as indented UTF-8 JSON. HTML escaping is
// disabled so non-ASCII text is preserved literally.
func writeJSON(res *speech.Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
