package search

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is one entry of the ordered decoding fallback list.
type Encoding struct {
	Name string
	enc  encoding.Encoding
}

// Encodings is the fixed order in which file content is decoded. The last
// entry maps every byte to a rune and therefore never fails.
//
// x/text's EUC-KR table covers the CP949 (Unified Hangul Code) extension,
// so the two legacy entries share a decoder.
var Encodings = []Encoding{
	{Name: "utf-8", enc: unicode.UTF8},
	{Name: "cp949", enc: korean.EUCKR},
	{Name: "euc-kr", enc: korean.EUCKR},
	{Name: "latin-1", enc: charmap.ISO8859_1},
}

// Decoder returns a fresh decoder. Invalid input is replaced with U+FFFD.
func (e Encoding) Decoder() *encoding.Decoder {
	return e.enc.NewDecoder()
}

func (e Encoding) String() string {
	return e.Name
}
