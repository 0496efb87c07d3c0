// Package markup tokenizes HTML fragments for attribute checking.
//
// It wraps the golang.org/x/net/html tokenizer and re-reads the raw bytes
// of each tag, because the tokenizer lower-cases attribute names and does
// not distinguish <x a> from <x a="">.
package markup

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/adammathes/webattr/pkg/report"
	"github.com/adammathes/webattr/pkg/unicase"
	"github.com/adammathes/webattr/pkg/webns"
)

// NewReader returns a reader that decodes r from the encoding named by a
// WHATWG label ("utf-8", "latin1", "shift_jis", ...) into UTF-8. An empty
// label returns r unchanged.
func NewReader(r io.Reader, label string) (io.Reader, error) {
	if label == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", label, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Tag token types, as reported by the tokenizer.
const (
	StartTag       = html.StartTagToken
	EndTag         = html.EndTagToken
	SelfClosingTag = html.SelfClosingTagToken
)

// Attr is one attribute as written in the source.
type Attr struct {
	Name     string // original spelling
	Value    string // unescaped value, "" when HasValue is false
	HasValue bool   // false for a bare attribute such as <input disabled>
	Raw      string // source text of the attribute
}

// Token is one markup token.
type Token struct {
	Type   html.TokenType
	Name   string // original spelling of a tag name
	Attrs  []Attr
	Raw    []byte
	Schema webns.Schema
	Line   int
	Col    int
}

// Location returns the 1-based "line:col" of the token start. Columns
// count runes, not bytes.
func (t *Token) Location() string {
	return report.Location(t.Line, t.Col)
}

// IsTag reports whether t is a start, end or self-closing tag.
func (t *Token) IsTag() bool {
	switch t.Type {
	case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
		return true
	}
	return false
}

// Scanner yields tokens with their namespace. Descendants of an <svg>
// element belong to the SVG namespace.
type Scanner struct {
	z        *html.Tokenizer
	root     webns.Schema
	svgDepth int
	line     int
	col      int
	offset   int
	tok      Token
	err      error
}

// NewScanner reads markup from r. root is the namespace outside any <svg>
// element; zero means HTML5.
func NewScanner(r io.Reader, root webns.Schema) *Scanner {
	if root == 0 {
		root = webns.HTML5
	}
	return &Scanner{z: html.NewTokenizer(r), root: root, line: 1, col: 1}
}

// Next advances to the next token. It returns false at the end of input or
// on error.
func (s *Scanner) Next() bool {
	tt := s.z.Next()
	if tt == html.ErrorToken {
		if err := s.z.Err(); !errors.Is(err, io.EOF) {
			s.err = err
		}
		return false
	}

	raw := s.z.Raw()
	s.tok = Token{
		Type: tt,
		Raw:  raw,
		Line: s.line,
		Col:  s.col,
	}
	s.advance(raw)

	switch tt {
	case html.StartTagToken, html.SelfClosingTagToken:
		s.tok.Name, s.tok.Attrs = parseTag(raw)
		s.tok.Schema = s.schemaFor(s.tok.Name)
		if tt == html.StartTagToken && s.root != webns.SVG && unicase.Equal(s.tok.Name, "svg") {
			s.svgDepth++
		}
	case html.EndTagToken:
		s.tok.Name, _ = parseTag(raw)
		s.tok.Schema = s.schemaFor(s.tok.Name)
		if s.svgDepth > 0 && unicase.Equal(s.tok.Name, "svg") {
			s.svgDepth--
		}
	default:
		s.tok.Schema = s.schemaFor("")
	}
	return true
}

func (s *Scanner) schemaFor(tag string) webns.Schema {
	if s.svgDepth > 0 || unicase.Equal(tag, "svg") {
		return webns.SVG
	}
	return s.root
}

func (s *Scanner) advance(raw []byte) {
	s.offset += len(raw)
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		raw = raw[size:]
		if r == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
}

// Offset returns the number of input bytes covered by the tokens returned
// so far. After Next returns false, bytes past Offset belong to a tag left
// open at the end of input, which the tokenizer drops.
func (s *Scanner) Offset() int {
	return s.offset
}

// Token returns the current token. Its Raw bytes are valid until the next
// call to Next.
func (s *Scanner) Token() *Token {
	return &s.tok
}

// Err returns the first non-EOF error.
func (s *Scanner) Err() error {
	return s.err
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\n', '\r', '\t', '\f':
		return true
	}
	return false
}

// parseTag splits the raw text of a start or end tag into its name and
// attributes, following the tokenizer's rules for attribute boundaries.
func parseTag(raw []byte) (string, []Attr) {
	i := 1
	if i < len(raw) && raw[i] == '/' {
		i++
	}
	start := i
	for i < len(raw) && !isSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' {
		i++
	}
	name := string(raw[start:i])

	var attrs []Attr
	for {
		for i < len(raw) && (isSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}

		attrStart := i
		i++ // a leading '=' belongs to the name
		for i < len(raw) && !isSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' && raw[i] != '=' {
			i++
		}
		a := Attr{Name: string(raw[attrStart:i])}

		j := i
		for j < len(raw) && isSpace(raw[j]) {
			j++
		}
		if j < len(raw) && raw[j] == '=' {
			j++
			for j < len(raw) && isSpace(raw[j]) {
				j++
			}
			a.HasValue = true
			if j < len(raw) && (raw[j] == '"' || raw[j] == '\'') {
				quote := raw[j]
				j++
				valStart := j
				for j < len(raw) && raw[j] != quote {
					j++
				}
				a.Value = html.UnescapeString(string(raw[valStart:j]))
				if j < len(raw) {
					j++
				}
			} else {
				valStart := j
				for j < len(raw) && !isSpace(raw[j]) && raw[j] != '>' {
					j++
				}
				a.Value = html.UnescapeString(string(raw[valStart:j]))
			}
			i = j
		}
		a.Raw = string(raw[attrStart:i])
		attrs = append(attrs, a)
	}
	return name, attrs
}
