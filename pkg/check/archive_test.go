package check

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeArchive(t *testing.T, files map[string]string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "book.epub")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return p
}

const chapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" xml:lang="en">
<head><title>T</title></head>
<body><section epub:type="chapter"><p bogus="1">x</p></section></body>
</html>`

func TestCheckArchive(t *testing.T) {
	p := writeArchive(t, map[string]string{
		"mimetype": "application/epub+zip",
		"META-INF/container.xml": `<container><rootfiles>
<rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
</rootfiles></container>`,
		"OEBPS/content.opf": `<package><manifest>
<item id="ch1" href="ch1.xhtml" media-type="application/xhtml+xml"/>
<item id="ch2" href="ch2.xhtml" media-type="application/xhtml+xml"/>
<item id="fig" href="fig.svg" media-type="image/svg+xml"/>
</manifest></package>`,
		"OEBPS/ch1.xhtml": chapterXHTML,
		"OEBPS/fig.svg":   `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1"><rect width="1" height="1"/></svg>`,
	})

	r, err := CheckArchive(p, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ERROR ATTR-001", "ERROR DOC-001"}
	if diff := cmp.Diff(want, ids(r)); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
		logMessages(t, r)
		return
	}
	if loc := r.Messages[0].Location; !strings.HasPrefix(loc, "OEBPS/ch1.xhtml:4:") {
		t.Errorf("ATTR-001 location = %q, want OEBPS/ch1.xhtml:4:*", loc)
	}
	if loc := r.Messages[1].Location; loc != "OEBPS/ch2.xhtml" {
		t.Errorf("DOC-001 location = %q, want OEBPS/ch2.xhtml", loc)
	}
}

func TestCheckArchivePlainZip(t *testing.T) {
	p := writeArchive(t, map[string]string{
		"a.html": `<p hidden="false">`,
		"b.svg":  `<svg><flarp/></svg>`,
	})
	r, err := CheckArchive(p, Options{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"USAGE ATTR-004", "ERROR TAG-001"}
	if diff := cmp.Diff(want, ids(r)); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
		logMessages(t, r)
	}
}

func TestPrefixedNamesOnlySkippedWhenAllowed(t *testing.T) {
	src := `<section epub:type="chapter"></section>`
	r, err := CheckString(src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"ERROR ATTR-001"}, ids(r)); diff != "" {
		t.Errorf("default mismatch (-want +got):\n%s", diff)
	}
	r, err = CheckString(src, Options{AllowPrefixed: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Messages) != 0 {
		t.Error("expected no findings with AllowPrefixed")
		logMessages(t, r)
	}
}
