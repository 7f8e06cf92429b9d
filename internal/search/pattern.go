package search

import (
	"regexp"
	"runtime"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// DefaultExtension is used when the caller supplies an empty extension.
const DefaultExtension = ".conf"

// foldCase mirrors the platform's filename case rules for glob matching.
var foldCase = runtime.GOOS == "windows"

// NormalizePattern turns a user supplied extension into a name glob.
//
//	"conf"  -> "*.conf"
//	".conf" -> "*.conf"
//	"*.txt" -> "*.txt"
//	""      -> "*.conf"
func NormalizePattern(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		ext = DefaultExtension
	}
	if hasWildcard(ext) {
		return ext
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return "*" + ext
}

// MatchName reports whether a base file name matches pattern. Patterns of
// the form "*.ext" also match by plain suffix comparison, so a name is never
// missed because the glob engine folds case differently from the filesystem.
func MatchName(pattern, name string) bool {
	if globMatch(pattern, name) {
		return true
	}
	return strings.HasPrefix(pattern, "*.") && strings.HasSuffix(name, pattern[1:])
}

func globMatch(pattern, name string) bool {
	if foldCase {
		pattern = strings.ToLower(pattern)
		name = strings.ToLower(name)
	}
	re, err := compileGlob(pattern)
	return err == nil && re.MatchString(name)
}

var globCache sync.Map // pattern -> *regexp.Regexp

func compileGlob(pattern string) (*regexp.Regexp, error) {
	if re, ok := globCache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(translateGlob(pattern))
	if err != nil {
		return nil, err
	}
	globCache.Store(pattern, re)
	return re, nil
}

// translateGlob rewrites a shell glob as an anchored regular expression
// with fnmatch rules: '*' and '?' match any character including '/', a
// '[' without a closing ']' is literal, a ']' right after '[' or "[!" is a
// class member and a backslash is always literal.
func translateGlob(pattern string) string {
	p := []rune(pattern)
	n := len(p)

	var b strings.Builder
	b.WriteString(`^(?s:`)
	for i := 0; i < n; {
		c := p[i]
		i++
		switch c {
		case '*':
			for i < n && p[i] == '*' {
				i++
			}
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			j := i
			if j < n && p[j] == '!' {
				j++
			}
			if j < n && p[j] == ']' {
				j++
			}
			for j < n && p[j] != ']' {
				j++
			}
			if j >= n {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(translateClass(p[i:j]))
			i = j + 1
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString(`)\z`)
	return b.String()
}

// translateClass converts the inside of a bracket expression. Reversed
// ranges match nothing and are dropped.
func translateClass(body []rune) string {
	negate := len(body) > 0 && body[0] == '!'
	if negate {
		body = body[1:]
	}

	var items strings.Builder
	for k := 0; k < len(body); {
		if k+2 < len(body) && body[k+1] == '-' {
			lo, hi := body[k], body[k+2]
			if lo <= hi {
				items.WriteString(classRune(lo) + "-" + classRune(hi))
			}
			k += 3
			continue
		}
		items.WriteString(classRune(body[k]))
		k++
	}

	switch {
	case items.Len() == 0 && negate:
		return `.`
	case items.Len() == 0:
		return `[^\x00-\x{10FFFF}]`
	case negate:
		return `[^` + items.String() + `]`
	default:
		return `[` + items.String() + `]`
	}
}

func classRune(r rune) string {
	if r < utf8.RuneSelf && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return `\` + string(r)
	}
	return string(r)
}

func hasWildcard(s string) bool {
	return strings.ContainsAny(s, "*?")
}
