package normalize

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adammathes/webattr/pkg/webns"
)

func fixIDs(fixes []Fix) []string {
	var out []string
	for _, f := range fixes {
		out = append(out, f.CheckID)
	}
	return out
}

func TestNormalizeCases(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		opts  Options
		want  string
		fixes []string
	}{
		{
			name: "untouched",
			src:  "<p  id='x'\n class=\"a b\">text</p>",
			want: "<p  id='x'\n class=\"a b\">text</p>",
		},
		{
			name:  "attribute case",
			src:   `<p CLASS="a">`,
			want:  `<p class="a">`,
			fixes: []string{"NORM-001"},
		},
		{
			name:  "space separated value",
			src:   `<p class="  a   b ">`,
			want:  `<p class="a b">`,
			fixes: []string{"NORM-002"},
		},
		{
			name:  "comma separated value",
			src:   `<input accept="image/png,image/jpeg">`,
			want:  `<input accept="image/png, image/jpeg">`,
			fixes: []string{"NORM-002"},
		},
		{
			name:  "bool empty",
			src:   `<input disabled="">`,
			want:  `<input disabled>`,
			fixes: []string{"NORM-002"},
		},
		{
			name:  "bool false removed",
			src:   `<input type="checkbox" checked="false">`,
			want:  `<input type="checkbox">`,
			fixes: []string{"NORM-003"},
		},
		{
			name:  "duplicate removed",
			src:   `<p title="a" TITLE="b">`,
			want:  `<p title="a">`,
			fixes: []string{"NORM-004"},
		},
		{
			name:  "tag case",
			src:   `<DIV id="a"></DIV>`,
			want:  `<div id="a"></div>`,
			fixes: []string{"NORM-001", "NORM-001"},
		},
		{
			name:  "svg spelling",
			src:   `<svg viewbox="0 0 1 1"><foreignobject></foreignobject></svg>`,
			want:  `<svg viewBox="0 0 1 1"><foreignObject></foreignObject></svg>`,
			fixes: []string{"NORM-001", "NORM-001", "NORM-001"},
		},
		{
			name:  "self closing kept",
			src:   `<svg><circle R="1"/></svg>`,
			want:  `<svg><circle r="1"/></svg>`,
			fixes: []string{"NORM-001"},
		},
		{
			name: "unknown and invalid kept",
			src:  `<p bogus=1 id>`,
			want: `<p bogus=1 id>`,
		},
		{
			name:  "unknown kept next to a fix",
			src:   `<p bogus=1 HIDDEN>`,
			want:  `<p bogus=1 hidden>`,
			fixes: []string{"NORM-001"},
		},
		{
			name:  "download filename kept",
			src:   `<a DOWNLOAD="r.pdf">`,
			want:  `<a download="r.pdf">`,
			fixes: []string{"NORM-001"},
		},
		{
			name:  "escaping",
			src:   `<p TITLE="a &amp; &quot;b&quot;">`,
			want:  `<p title="a &amp; &#34;b&#34;">`,
			fixes: []string{"NORM-001"},
		},
		{
			name:  "data attribute prefix",
			src:   `<p DATA-fooBar="1">`,
			want:  `<p data-fooBar="1">`,
			fixes: []string{"NORM-001"},
		},
		{
			name: "unterminated trailing tag",
			src:  `<p>keep me</p><div class="a"`,
			want: `<p>keep me</p><div class="a"`,
		},
		{
			name:  "unterminated trailing tag after a fix",
			src:   `<p CLASS=x>keep</p><img src="a.png"`,
			want:  `<p class="x">keep</p><img src="a.png"`,
			fixes: []string{"NORM-001"},
		},
		{
			name: "trailing text",
			src:  "<b>x</b> tail",
			want: "<b>x</b> tail",
		},
		{
			name:  "svg root",
			src:   `<rect WIDTH="1"/>`,
			opts:  Options{Namespace: webns.SVG},
			want:  `<rect width="1"/>`,
			fixes: []string{"NORM-001"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res, err := String(tt.src, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.src, got, tt.want)
			}
			if diff := cmp.Diff(tt.fixes, fixIDs(res.Fixes)); diff != "" {
				t.Errorf("fixes mismatch (-want +got):\n%s", diff)
				for _, f := range res.Fixes {
					t.Logf("  %s", f)
				}
			}
		})
	}
}

func TestNormalizeReports(t *testing.T) {
	src := `<p title="a" title="b"><input hidden="false"></p>`
	_, res, err := String(src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.BeforeReport.ErrorCount() != 1 || res.BeforeReport.UsageCount() != 1 {
		t.Errorf("before: errors=%d usages=%d, want 1 and 1",
			res.BeforeReport.ErrorCount(), res.BeforeReport.UsageCount())
	}
	if n := len(res.AfterReport.Messages); n != 0 {
		t.Errorf("after: %d messages, want 0", n)
		for _, m := range res.AfterReport.Messages {
			t.Logf("  %s", m)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	src := `<DIV Class=" x  y " hidden="" data-A="1"><svg VIEWBOX="0 0 1 1"></svg></DIV>`
	once, _, err := String(src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	twice, res, err := String(once, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if once != twice {
		t.Errorf("second pass changed output:\n%s\n%s", once, twice)
	}
	if len(res.Fixes) != 0 {
		t.Errorf("second pass applied %d fixes", len(res.Fixes))
	}
}

func TestNormalizeCharset(t *testing.T) {
	var out bytes.Buffer
	_, err := Normalize(strings.NewReader("<p TITLE=\"caf\xe9\">"), &out, Options{Charset: "windows-1252"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), `<p title="café">`; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFixString(t *testing.T) {
	f := Fix{CheckID: "NORM-001", Description: "Renamed", Location: "1:1"}
	if got, want := f.String(), "NORM-001: Renamed [1:1]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
