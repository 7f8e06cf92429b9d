package search

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrUndecodable is returned by Decode when no encoding could read the file.
var ErrUndecodable = errors.New("file could not be decoded")

// ContainsText reports whether any line of the file at path contains query.
//
// The file is decoded with the first entry of Encodings that can be read.
// That attempt's answer is final, even when the decode produced replacement
// characters. With strict set, an attempt that would need replacement
// characters is treated as failed and the next encoding is tried instead.
// Any I/O failure on every attempt yields false.
func ContainsText(path, query string, caseSensitive, strict bool) bool {
	if strict {
		text, _, err := decodeStrict(path)
		if err != nil {
			return false
		}
		found, _ := scanLines(strings.NewReader(text), query, caseSensitive)
		return found
	}

	for _, enc := range Encodings {
		found, err := scanFile(path, enc, query, caseSensitive)
		if found {
			return true
		}
		if err != nil {
			continue
		}
		return false
	}
	return false
}

// Decode reads the whole file using the same encoding policy as ContainsText.
func Decode(path string, strict bool) (string, Encoding, error) {
	if strict {
		return decodeStrict(path)
	}

	var lastErr error
	for _, enc := range Encodings {
		raw, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		text, err := enc.Decoder().String(string(raw))
		if err != nil {
			lastErr = err
			continue
		}
		return text, enc, nil
	}
	return "", Encoding{}, fmt.Errorf("%w: %s: %v", ErrUndecodable, path, lastErr)
}

func scanFile(path string, enc Encoding, query string, caseSensitive bool) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	return scanLines(enc.Decoder().Reader(f), query, caseSensitive)
}

func decodeStrict(path string) (string, Encoding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", Encoding{}, fmt.Errorf("%w: %s: %v", ErrUndecodable, path, err)
	}

	last := len(Encodings) - 1
	for i, enc := range Encodings {
		if enc.Name == "utf-8" {
			if utf8.Valid(raw) {
				return string(raw), enc, nil
			}
			continue
		}
		text, err := enc.Decoder().String(string(raw))
		if err != nil {
			continue
		}
		if i < last && strings.ContainsRune(text, utf8.RuneError) {
			continue
		}
		return text, enc, nil
	}
	return "", Encoding{}, fmt.Errorf("%w: %s", ErrUndecodable, path)
}

// scanLines checks each line, terminator included, for the query.
func scanLines(r io.Reader, query string, caseSensitive bool) (bool, error) {
	needle := query
	if !caseSensitive {
		needle = strings.ToLower(query)
	}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		for _, l := range splitNewlines(line) {
			if !caseSensitive {
				l = strings.ToLower(l)
			}
			if strings.Contains(l, needle) {
				return true, nil
			}
		}
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}

// splitNewlines breaks a chunk read up to '\n' into lines, treating "\r\n"
// and a lone '\r' as line breaks too. Every terminator becomes '\n'.
func splitNewlines(chunk string) []string {
	if chunk == "" {
		return nil
	}
	if !strings.ContainsRune(chunk, '\r') {
		return []string{chunk}
	}
	chunk = strings.ReplaceAll(chunk, "\r\n", "\n")
	lines := strings.SplitAfter(chunk, "\r")
	out := lines[:0]
	for _, l := range lines {
		if l == "" {
			continue
		}
		if strings.HasSuffix(l, "\r") {
			l = l[:len(l)-1] + "\n"
		}
		out = append(out, l)
	}
	return out
}
