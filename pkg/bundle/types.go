package bundle

import (
	"archive/zip"

	"github.com/adammathes/webattr/pkg/webns"
)

// Bundle is an opened zip archive of markup documents, such as an EPUB.
type Bundle struct {
	zr    *zip.ReadCloser
	files map[string]*zip.File
}

// Document is one markup file inside a bundle.
type Document struct {
	Name      string // path within the archive
	MediaType string
	// Schema is the namespace of the document root.
	Schema webns.Schema
}

// Media types of documents that carry markup attributes.
const (
	MediaTypeXHTML = "application/xhtml+xml"
	MediaTypeHTML  = "text/html"
	MediaTypeSVG   = "image/svg+xml"
)

const packageMediaType = "application/oebps-package+xml"

type containerXML struct {
	Rootfiles []struct {
		FullPath  string `xml:"full-path,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"rootfiles>rootfile"`
}

type packageXML struct {
	Items []struct {
		Href      string `xml:"href,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"manifest>item"`
}
