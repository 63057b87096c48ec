package export

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sjzar/ytscribe/internal/speech"
)

// writeSRT emits one subtitle block per chunk: index line, timing line,
// text, blank separator. Blocks are 1-indexed. A chunk without an end time
// reuses its start time.
func writeSRT(res *speech.Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for i, chunk := range res.Chunks {
		end := chunk.Start
		if chunk.End != nil {
			end = *chunk.End
		}
		fmt.Fprintf(w, "%d\n", i+1)
		fmt.Fprintf(w, "%s --> %s\n", FormatSRTTimestamp(chunk.Start), FormatSRTTimestamp(end))
		fmt.Fprintf(w, "%s\n\n", chunk.Text)
	}
	return w.Flush()
}

// FormatSRTTimestamp converts seconds to the SRT timing form HH:MM:SS,mmm
// with zero-padded fields.
func FormatSRTTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	millis := int64(math.Round(seconds * 1000))
	h := millis / 3600000
	m := (millis % 3600000) / 60000
	s := (millis % 60000) / 1000
	ms := millis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// ParseSRTTimestamp converts an HH:MM:SS,mmm timing back to seconds.
func ParseSRTTimestamp(ts string) (float64, error) {
	main, msPart, ok := strings.Cut(ts, ",")
	if !ok {
		return 0, fmt.Errorf("invalid srt timestamp %q", ts)
	}
	parts := strings.Split(main, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid srt timestamp %q", ts)
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	s, err3 := strconv.Atoi(parts[2])
	ms, err4 := strconv.Atoi(msPart)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return 0, fmt.Errorf("invalid srt timestamp %q", ts)
	}
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000, nil
}
