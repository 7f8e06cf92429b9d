package search

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Request describes one search. It is not modified once a search starts.
type Request struct {
	Root          string
	Pattern       string // normalized glob, see NormalizePattern
	Recursive     bool
	Query         string
	CaseSensitive bool
	Strict        bool // strict encoding fallback, see ContainsText
}

// Search yields every file under req.Root whose name matches req.Pattern and
// whose content contains req.Query. Order is the directory traversal order.
//
// The token is checked before each candidate is read and before each result
// is yielded; once it is cancelled no more files are opened.
func Search(req Request, tok *Token) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range Candidates(req.Root, req.Pattern, req.Recursive, tok) {
			if tok.Cancelled() {
				return
			}
			if !ContainsText(path, req.Query, req.CaseSensitive, req.Strict) {
				continue
			}
			if tok.Cancelled() {
				return
			}
			if !yield(path) {
				return
			}
		}
	}
}

// Candidates yields the regular files under root whose base name matches
// pattern. Directories that cannot be read are skipped.
func Candidates(root, pattern string, recursive bool, tok *Token) iter.Seq[string] {
	return func(yield func(string) bool) {
		if recursive {
			walkTree(root, pattern, tok, yield)
			return
		}
		listDir(root, pattern, tok, yield)
	}
}

func walkTree(root, pattern string, tok *Token, yield func(string) bool) {
	start := root
	if fi, err := os.Lstat(root); err == nil && fi.Mode()&fs.ModeSymlink != 0 {
		// trailing separator makes Lstat resolve a symlinked root
		start = root + string(filepath.Separator)
	}

	_ = filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if tok.Cancelled() {
			return filepath.SkipAll
		}
		if err != nil {
			// unreadable entry or subtree
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !MatchName(pattern, d.Name()) || !isRegular(path, d) {
			return nil
		}
		if !yield(path) {
			return filepath.SkipAll
		}
		return nil
	})
}

func listDir(root, pattern string, tok *Token, yield func(string) bool) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}
	for _, e := range entries {
		if tok.Cancelled() {
			return
		}
		if e.IsDir() || !MatchName(pattern, e.Name()) {
			continue
		}
		path := filepath.Join(root, e.Name())
		if !isRegular(path, e) {
			continue
		}
		if !yield(path) {
			return
		}
	}
}

// isRegular accepts regular files and symlinks that resolve to one.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
