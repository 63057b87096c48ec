package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter collects interactive answers, falling back to defaults on blank
// input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) ask(label, def string) string {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def
	}
	return answer
}

func (p *prompter) askURL() string {
	return p.ask("Enter the YouTube video URL: ", "")
}

func (p *prompter) askFormat() string {
	fmt.Fprintln(p.out, "Choose output format:")
	fmt.Fprintln(p.out, "1. Text file (.txt)")
	fmt.Fprintln(p.out, "2. JSON with timestamps (.json)")
	fmt.Fprintln(p.out, "3. Subtitle file (.srt)")
	return p.ask("Enter your choice (1-3) [default: 1]: ", "1")
}

func (p *prompter) askDevice() string {
	return p.ask("Choose compute device (mps, cuda, cpu) [default: mps]: ", "mps")
}

func (p *prompter) askLanguage() string {
	fmt.Fprintln(p.out, "\nLanguage options:")
	fmt.Fprintln(p.out, "- Leave empty for automatic language detection")
	fmt.Fprintln(p.out, "- Enter 'en' for English")
	fmt.Fprintln(p.out, "- Enter other language code (e.g., 'fr', 'es', 'de', etc.)")
	return p.ask("Select language [default: auto-detect]: ", "")
}
