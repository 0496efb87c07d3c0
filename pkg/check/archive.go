package check

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adammathes/webattr/pkg/bundle"
	"github.com/adammathes/webattr/pkg/report"
)

// CheckArchive checks every markup document of a zip archive or EPUB.
// Locations are prefixed with the document path. Each document is checked
// against the namespace of its media type, and prefixed names are allowed.
//
// Additional check IDs:
//   - DOC-001: manifest item missing from the archive (error)
//   - DOC-002: document cannot be decoded (fatal)
func CheckArchive(path string, opts Options) (*report.Report, error) {
	b, err := bundle.Open(path)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	docs, err := b.Documents()
	if err != nil {
		return nil, fmt.Errorf("listing documents of %s: %w", path, err)
	}

	rep := report.NewReport()
	for _, doc := range docs {
		data, err := b.ReadFile(doc.Name)
		if errors.Is(err, bundle.ErrNotFound) {
			rep.AddWithLocation(report.Error, "DOC-001",
				fmt.Sprintf("Document %s listed in the manifest is missing", doc.Name), doc.Name)
			continue
		}
		if err != nil {
			return nil, err
		}

		docOpts := opts
		docOpts.Namespace = doc.Schema
		docOpts.AllowPrefixed = true
		r, err := Check(bytes.NewReader(data), docOpts)
		if err != nil {
			rep.AddWithLocation(report.Fatal, "DOC-002",
				fmt.Sprintf("Cannot read %s: %v", doc.Name, err), doc.Name)
			continue
		}
		for _, m := range r.Messages {
			rep.AddWithLocation(m.Severity, m.CheckID, m.Message, doc.Name+":"+m.Location)
		}
	}
	return rep, nil
}
