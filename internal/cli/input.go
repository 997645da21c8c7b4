package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readInput collects input lines from the given file, from stdin, or from
// both. Stdin is read when it is piped, and also when no file was named
// at all. Lines are whitespace-trimmed.
func readInput(file string) ([]string, error) {
	var lines []string

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		fileLines, err := readLines(f)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fileLines...)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || file == "" {
		stdinLines, err := readLines(os.Stdin)
		if err != nil {
			return nil, err
		}
		lines = append(lines, stdinLines...)
	}

	return lines, nil
}

// readLines has no line length limit; a Scanner would reject lines over
// its token size.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
