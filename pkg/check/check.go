// Package check reports unknown tags, unknown attributes and invalid
// attribute values in HTML fragments.
//
// Check IDs:
//   - TAG-001: unknown tag (warning; custom elements containing '-' are skipped)
//   - ATTR-001: unknown attribute (error)
//   - ATTR-002: value does not match the attribute type (error)
//   - ATTR-003: attribute repeated on one element (error)
//   - ATTR-004: boolean attribute written as "false", which still sets it (usage)
package check

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/markup"
	"github.com/adammathes/webattr/pkg/report"
	"github.com/adammathes/webattr/pkg/unicase"
	"github.com/adammathes/webattr/pkg/webns"
)

// Options configures checking.
type Options struct {
	// Namespace is the namespace outside any <svg> element. Zero means HTML5.
	Namespace webns.Schema

	// Charset is the WHATWG label of the input encoding. Empty means UTF-8.
	Charset string

	// Strict promotes TAG-001 to an error.
	Strict bool

	// AllowPrefixed skips unknown tags and attributes whose name carries a
	// namespace prefix, such as epub:type.
	AllowPrefixed bool
}

// Check reads an HTML fragment from r and returns its findings. The error
// is non-nil only when the input cannot be read or decoded.
func Check(r io.Reader, opts Options) (*report.Report, error) {
	in, err := markup.NewReader(r, opts.Charset)
	if err != nil {
		return nil, err
	}

	rep := report.NewReport()
	s := markup.NewScanner(in, opts.Namespace)
	for s.Next() {
		checkToken(s.Token(), opts, rep)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading markup: %w", err)
	}

	if opts.Strict {
		rep.Reclassify(map[string]bool{"TAG-001": true}, report.Warning, report.Error)
	}
	return rep, nil
}

// CheckString checks an in-memory fragment.
func CheckString(src string, opts Options) (*report.Report, error) {
	return Check(strings.NewReader(src), opts)
}

// CheckFile checks the fragment stored at path.
func CheckFile(path string, opts Options) (*report.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Check(f, opts)
}

// IsNamespaceDeclaration reports whether name is xmlns or xmlns:prefix.
// Declarations are not attributes of any namespace.
func IsNamespaceDeclaration(name string) bool {
	return unicase.Equal(name, "xmlns") || unicase.HasPrefix(name, "xmlns:")
}

func checkToken(tok *markup.Token, opts Options, rep *report.Report) {
	if tok.Type != markup.StartTag && tok.Type != markup.SelfClosingTag {
		return
	}
	ns := tok.Schema.Namespace()
	loc := tok.Location()

	if !strings.Contains(tok.Name, "-") && !(opts.AllowPrefixed && isPrefixed(tok.Name)) {
		if _, err := ns.TagByLocalName(tok.Name); err != nil {
			rep.AddWithLocation(report.Warning, "TAG-001",
				fmt.Sprintf("Unknown %s element <%s>", ns.Name(), tok.Name), loc)
		}
	}

	seen := make(map[webns.Attribute]bool, len(tok.Attrs))
	for _, a := range tok.Attrs {
		if IsNamespaceDeclaration(a.Name) {
			continue
		}
		h, err := ns.ResolveByLocalName(a.Name)
		if err != nil {
			if opts.AllowPrefixed && isPrefixed(a.Name) {
				continue
			}
			rep.AddWithLocation(report.Error, "ATTR-001",
				fmt.Sprintf("Unknown %s attribute %q on <%s>", ns.Name(), a.Name, tok.Name), loc)
			continue
		}
		if seen[h] {
			rep.AddWithLocation(report.Error, "ATTR-003",
				fmt.Sprintf("Duplicate attribute %q on <%s>", h.LocalName(), tok.Name), loc)
			continue
		}
		seen[h] = true

		v, err := h.Parse(a.Value, a.HasValue)
		if err != nil {
			rep.AddWithLocation(report.Error, "ATTR-002",
				fmt.Sprintf("Invalid value %s for attribute %q (%s)", describeValue(a), h.LocalName(), h.Type()), loc)
			continue
		}
		if h.Type().IsBool() && v.Kind() == attr.KindFalse {
			rep.AddWithLocation(report.Usage, "ATTR-004",
				fmt.Sprintf("Boolean attribute %q is written as \"false\" but is still set in markup", h.LocalName()), loc)
		}
	}
}

func isPrefixed(name string) bool {
	return strings.IndexByte(name, ':') > 0
}

func describeValue(a markup.Attr) string {
	if !a.HasValue {
		return "(none)"
	}
	return fmt.Sprintf("%q", a.Value)
}
