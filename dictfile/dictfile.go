// Package dictfile reads the plain-text dictionary a GADDAG is built
// from: one word per line, proper nouns (an uppercase first letter)
// skipped, the remainder trimmed and lowercased, and anything shorter
// than two letters silently dropped. A malformed line is never fatal --
// only I/O on the file itself is.
package dictfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/avast/retry-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Load reads every acceptable word from path. Transient open failures
// (path on a flaky mount, NFS hiccup) are retried a few times before
// giving up rather than failing on the first error.
func Load(path string) ([]string, error) {
	var words []string
	err := retry.Do(
		func() error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			words, err = ReadAll(f)
			return err
		},
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
		retry.Context(context.Background()),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n).Str("path", path).Msg("dictfile: retrying open")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("dictfile: loading %s: %w", path, err)
	}
	log.Info().Int("words", len(words)).Str("path", path).Msg("dictfile: loaded")
	return words, nil
}

// ReadAll applies the line rules to every line of r and returns the
// accepted words, in file order.
func ReadAll(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		w, ok := acceptLine(line)
		if !ok {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func acceptLine(line string) (string, bool) {
	if line == "" {
		return "", false
	}
	first := rune(line[0])
	if first >= 'A' && first <= 'Z' {
		return "", false
	}
	trimmed := trimSpace(line)
	w := lower.String(trimmed)
	if len(w) < 2 {
		return "", false
	}
	return w, true
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
