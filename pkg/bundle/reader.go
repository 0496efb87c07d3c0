package bundle

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/adammathes/webattr/pkg/webns"
)

const containerPath = "META-INF/container.xml"

// ErrNotFound is returned by ReadFile for a path missing from the archive.
var ErrNotFound = errors.New("file not found in archive")

// Open opens a zip archive. The caller must call Close when done.
func Open(name string) (*Bundle, error) {
	zr, err := zip.OpenReader(name)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	b := &Bundle{zr: zr, files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		b.files[f.Name] = f
	}
	return b, nil
}

func (b *Bundle) Close() error {
	return b.zr.Close()
}

// ReadFile reads the contents of a file within the archive.
func (b *Bundle) ReadFile(name string) ([]byte, error) {
	f, ok := b.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Documents lists the markup documents of the bundle. An EPUB lists its
// manifest items in manifest order; any other archive lists its files with
// a markup extension in name order.
func (b *Bundle) Documents() ([]Document, error) {
	if _, ok := b.files[containerPath]; !ok {
		return b.documentsByExtension(), nil
	}
	opf, err := b.packagePath()
	if err != nil {
		return nil, err
	}
	data, err := b.ReadFile(opf)
	if err != nil {
		return nil, err
	}
	var pkg packageXML
	if err := xml.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", opf, err)
	}

	var docs []Document
	for _, item := range pkg.Items {
		s, ok := schemaForMediaType(item.MediaType)
		if !ok {
			continue
		}
		docs = append(docs, Document{
			Name:      resolveHref(opf, item.Href),
			MediaType: item.MediaType,
			Schema:    s,
		})
	}
	return docs, nil
}

// packagePath returns the package document named by the container: the
// first rootfile with the package media type or none, else the first one.
func (b *Bundle) packagePath() (string, error) {
	data, err := b.ReadFile(containerPath)
	if err != nil {
		return "", err
	}
	var c containerXML
	if err := xml.Unmarshal(data, &c); err != nil {
		return "", fmt.Errorf("parsing %s: %w", containerPath, err)
	}
	if len(c.Rootfiles) == 0 {
		return "", fmt.Errorf("%s lists no rootfile", containerPath)
	}
	for _, rf := range c.Rootfiles {
		if rf.MediaType == packageMediaType || rf.MediaType == "" {
			return rf.FullPath, nil
		}
	}
	return c.Rootfiles[0].FullPath, nil
}

// resolveHref resolves a manifest href against the package document path.
// Hrefs are IRI-encoded while zip entry names are not.
func resolveHref(opf, href string) string {
	if u, err := url.PathUnescape(href); err == nil {
		href = u
	}
	if i := strings.IndexAny(href, "#?"); i >= 0 {
		href = href[:i]
	}
	return path.Join(path.Dir(opf), href)
}

func (b *Bundle) documentsByExtension() []Document {
	var docs []Document
	for name := range b.files {
		mt := mediaTypeForName(name)
		if mt == "" {
			continue
		}
		s, _ := schemaForMediaType(mt)
		docs = append(docs, Document{Name: name, MediaType: mt, Schema: s})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs
}

func mediaTypeForName(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".xhtml":
		return MediaTypeXHTML
	case ".html", ".htm":
		return MediaTypeHTML
	case ".svg":
		return MediaTypeSVG
	}
	return ""
}

func schemaForMediaType(mt string) (webns.Schema, bool) {
	switch mt {
	case MediaTypeXHTML, MediaTypeHTML:
		return webns.HTML5, true
	case MediaTypeSVG:
		return webns.SVG, true
	}
	return 0, false
}
