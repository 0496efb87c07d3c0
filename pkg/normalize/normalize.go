// Package normalize rewrites HTML fragments so that every known attribute
// uses its canonical name and normalized value.
//
// The approach:
//  1. Decode the input and check it
//  2. Rewrite every tag that needs a fix; copy all other bytes unchanged
//  3. Check the output to confirm the fixes
//
// Fixes:
//   - NORM-001: tag or attribute name rewritten to its canonical spelling
//   - NORM-002: attribute value rewritten through parse and serialize
//   - NORM-003: boolean attribute set to "false" removed
//   - NORM-004: repeated attribute removed, the first one wins
//
// Unknown attributes and attributes with invalid values are left as written.
package normalize

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/check"
	"github.com/adammathes/webattr/pkg/markup"
	"github.com/adammathes/webattr/pkg/report"
	"github.com/adammathes/webattr/pkg/webns"
)

// Options configures normalization.
type Options struct {
	// Namespace is the namespace outside any <svg> element. Zero means HTML5.
	Namespace webns.Schema

	// Charset is the WHATWG label of the input encoding. Output is always UTF-8.
	Charset string
}

// Fix represents a single applied fix.
type Fix struct {
	CheckID     string `json:"check_id" yaml:"check_id"`
	Description string `json:"description" yaml:"description"`
	Location    string `json:"location" yaml:"location"`
}

func (f Fix) String() string {
	return fmt.Sprintf("%s: %s [%s]", f.CheckID, f.Description, f.Location)
}

// Result holds the outcome of a normalization run.
type Result struct {
	Fixes        []Fix
	BeforeReport *report.Report
	AfterReport  *report.Report
}

// Normalize reads a fragment from r and writes the normalized fragment to w.
func Normalize(r io.Reader, w io.Writer, opts Options) (*Result, error) {
	in, err := markup.NewReader(r, opts.Charset)
	if err != nil {
		return nil, err
	}
	src, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	checkOpts := check.Options{Namespace: opts.Namespace}
	before, err := check.Check(bytes.NewReader(src), checkOpts)
	if err != nil {
		return nil, fmt.Errorf("checking input: %w", err)
	}

	var out bytes.Buffer
	fixes, err := rewrite(src, &out, opts.Namespace)
	if err != nil {
		return nil, err
	}

	after, err := check.Check(bytes.NewReader(out.Bytes()), checkOpts)
	if err != nil {
		return nil, fmt.Errorf("checking output: %w", err)
	}

	if _, err := w.Write(out.Bytes()); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}
	return &Result{Fixes: fixes, BeforeReport: before, AfterReport: after}, nil
}

// String normalizes an in-memory fragment.
func String(src string, opts Options) (string, *Result, error) {
	var b strings.Builder
	res, err := Normalize(strings.NewReader(src), &b, opts)
	if err != nil {
		return "", nil, err
	}
	return b.String(), res, nil
}

func rewrite(src []byte, w *bytes.Buffer, root webns.Schema) ([]Fix, error) {
	var fixes []Fix
	s := markup.NewScanner(bytes.NewReader(src), root)
	for s.Next() {
		tok := s.Token()
		switch tok.Type {
		case markup.StartTag, markup.SelfClosingTag:
			fixes = append(fixes, rewriteStartTag(tok, w)...)
		case markup.EndTag:
			name, renamed := canonicalTag(tok)
			if renamed {
				fixes = append(fixes, Fix{
					CheckID:     "NORM-001",
					Description: fmt.Sprintf("Renamed </%s> to </%s>", tok.Name, name),
					Location:    tok.Location(),
				})
				w.WriteString("</" + name + ">")
				continue
			}
			w.Write(tok.Raw)
		default:
			w.Write(tok.Raw)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading markup: %w", err)
	}
	// A tag left open at the end of input is copied as written.
	w.Write(src[s.Offset():])
	return fixes, nil
}

func canonicalTag(tok *markup.Token) (string, bool) {
	t, err := tok.Schema.Namespace().TagByLocalName(tok.Name)
	if err != nil || t.LocalName() == tok.Name {
		return tok.Name, false
	}
	return t.LocalName(), true
}

// rewriteStartTag writes tok to w. The raw bytes are copied when no fix
// applies, so untouched tags keep their formatting.
func rewriteStartTag(tok *markup.Token, w *bytes.Buffer) []Fix {
	var fixes []Fix
	loc := tok.Location()
	add := func(id, format string, args ...any) {
		fixes = append(fixes, Fix{CheckID: id, Description: fmt.Sprintf(format, args...), Location: loc})
	}

	ns := tok.Schema.Namespace()
	name, renamed := canonicalTag(tok)
	if renamed {
		add("NORM-001", "Renamed <%s> to <%s>", tok.Name, name)
	}

	parts := make([]string, 0, len(tok.Attrs))
	seen := make(map[webns.Attribute]bool, len(tok.Attrs))
	for _, a := range tok.Attrs {
		if check.IsNamespaceDeclaration(a.Name) {
			parts = append(parts, a.Raw)
			continue
		}
		h, err := ns.ResolveByLocalName(a.Name)
		if err != nil {
			parts = append(parts, a.Raw)
			continue
		}
		if seen[h] {
			add("NORM-004", "Removed duplicate attribute %q", a.Name)
			continue
		}
		seen[h] = true

		v, err := h.Parse(a.Value, a.HasValue)
		if err != nil {
			parts = append(parts, a.Raw)
			continue
		}
		if a.Name != h.LocalName() {
			add("NORM-001", "Renamed attribute %q to %q", a.Name, h.LocalName())
		}
		if h.Type().IsBool() && (v.Kind() == attr.KindString || v.Kind() == attr.KindMulti) {
			// Serializing would drop the text of a BOOL|STRING value.
			parts = append(parts, h.LocalName()+`="`+html.EscapeString(a.Value)+`"`)
			continue
		}

		out := h.Serialize(v)
		switch out.Kind() {
		case attr.Omitted:
			add("NORM-003", "Removed boolean attribute %q set to %q", h.LocalName(), a.Value)
		case attr.Empty:
			if a.HasValue {
				add("NORM-002", "Rewrote %s=%q as a bare attribute", h.LocalName(), a.Value)
			}
			parts = append(parts, h.LocalName())
		default:
			if !a.HasValue || out.Text() != a.Value {
				add("NORM-002", "Rewrote value of %q from %s to %q", h.LocalName(), quoteRaw(a), out.Text())
			}
			parts = append(parts, h.LocalName()+`="`+html.EscapeString(out.Text())+`"`)
		}
	}

	if len(fixes) == 0 {
		w.Write(tok.Raw)
		return nil
	}

	w.WriteByte('<')
	w.WriteString(name)
	for _, p := range parts {
		w.WriteByte(' ')
		w.WriteString(p)
	}
	if tok.Type == markup.SelfClosingTag {
		w.WriteString("/>")
	} else {
		w.WriteByte('>')
	}
	return fixes
}

func quoteRaw(a markup.Attr) string {
	if !a.HasValue {
		return "(none)"
	}
	return fmt.Sprintf("%q", a.Value)
}
