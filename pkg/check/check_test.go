package check

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adammathes/webattr/pkg/report"
	"github.com/adammathes/webattr/pkg/webns"
)

func ids(r *report.Report) []string {
	var out []string
	for _, m := range r.Messages {
		out = append(out, string(m.Severity)+" "+m.CheckID)
	}
	return out
}

func logMessages(t *testing.T, r *report.Report) {
	t.Helper()
	for _, m := range r.Messages {
		t.Logf("  %s", m)
	}
}

func TestCheckFileValid(t *testing.T) {
	r, err := CheckFile(filepath.Join("testdata", "valid.html"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Messages) != 0 {
		t.Error("expected no findings")
		logMessages(t, r)
	}
}

func TestCheckFileBroken(t *testing.T) {
	r, err := CheckFile(filepath.Join("testdata", "broken.html"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"ERROR ATTR-001",
		"ERROR ATTR-003",
		"WARNING TAG-001",
		"USAGE ATTR-004",
		"ERROR ATTR-002",
	}
	if diff := cmp.Diff(want, ids(r)); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
		logMessages(t, r)
	}
	if r.Messages[2].Location != "2:3" {
		t.Errorf("TAG-001 location = %q, want 2:3", r.Messages[2].Location)
	}
}

func TestCheckFileMissing(t *testing.T) {
	if _, err := CheckFile(filepath.Join("testdata", "nope.html"), Options{}); err == nil {
		t.Error("CheckFile on a missing file succeeded")
	}
}

func TestCheckCases(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		want []string
	}{
		{"clean", `<p id="x" class="a b">hi</p>`, Options{}, nil},
		{"unknown attribute", `<p not-a-real-attribute="1">`, Options{}, []string{"ERROR ATTR-001"}},
		{"data attribute", `<p data-foo-bar="1" DATA-X="">`, Options{}, nil},
		{"too short data", `<p data->`, Options{}, []string{"ERROR ATTR-001"}},
		{"bare string attribute", `<p id>`, Options{}, []string{"ERROR ATTR-002"}},
		{"empty string attribute", `<p id="">`, Options{}, nil},
		{"bool with text", `<input disabled="disabled">`, Options{}, []string{"ERROR ATTR-002"}},
		{"bool with true", `<input disabled="true">`, Options{}, nil},
		{"bool false", `<input disabled="false">`, Options{}, []string{"USAGE ATTR-004"}},
		{"true or false", `<p draggable="true" spellcheck="false">`, Options{}, nil},
		{"true or false bare", `<p draggable>`, Options{}, []string{"ERROR ATTR-002"}},
		{"number", `<td colspan="2" rowspan="">`, Options{}, []string{"ERROR ATTR-002"}},
		{"duplicate case", `<p Title="a" title="b">`, Options{}, []string{"ERROR ATTR-003"}},
		{"duplicate data", `<p data-x="1" DATA-x="2">`, Options{}, []string{"ERROR ATTR-003"}},
		{"unknown tag", `<flarp>`, Options{}, []string{"WARNING TAG-001"}},
		{"unknown tag strict", `<flarp>`, Options{Strict: true}, []string{"ERROR TAG-001"}},
		{"custom element", `<x-foo>`, Options{}, nil},
		{"end tags ignored", `</nope>`, Options{}, nil},
		{"svg attributes", `<svg viewBox="0 0 1 1"><path d="M0 0"/></svg>`, Options{}, nil},
		{"svg attribute in html", `<div viewBox="0 0 1 1">`, Options{}, []string{"ERROR ATTR-001"}},
		{"html tag in svg", `<svg><div></div></svg>`, Options{}, []string{"WARNING TAG-001"}},
		{"svg root", `<circle r="1"/>`, Options{Namespace: webns.SVG}, nil},
		{"xmlns ignored", `<svg xmlns="http://www.w3.org/2000/svg" XMLNS:foo="x">`, Options{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := CheckString(tt.src, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, ids(r)); diff != "" {
				t.Errorf("CheckString(%q) mismatch (-want +got):\n%s", tt.src, diff)
				logMessages(t, r)
			}
		})
	}
}

func TestCheckCharset(t *testing.T) {
	r, err := Check(strings.NewReader("<p title=\"caf\xe9\">"), Options{Charset: "iso-8859-1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Messages) != 0 {
		logMessages(t, r)
		t.Error("expected no findings")
	}
	if _, err := Check(strings.NewReader(""), Options{Charset: "klingon"}); err == nil {
		t.Error("unknown charset accepted")
	}
}

func TestMessagesNameTheAttribute(t *testing.T) {
	r, err := CheckString(`<p hidden="false">`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Messages) != 1 || !strings.Contains(r.Messages[0].Message, `"hidden"`) {
		t.Errorf("messages = %v", r.Messages)
	}
}
