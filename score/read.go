package score

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"
)

// ImportError is fatal to a load: no document is produced alongside it.
type ImportError struct {
	Cause string
}

func (e *ImportError) Error() string {
	return "import failed: " + e.Cause
}

const containerPath = "META-INF/container.xml"

type container struct {
	Rootfiles []rootfile `xml:"rootfiles>rootfile"`
}

type rootfile struct {
	FullPath string `xml:"full-path,attr"`
}

// Read decodes raw score bytes. Compressed containers (.mxl/.zip) are opened
// as archives and the rootfile named by META-INF/container.xml is decoded;
// anything else is treated as plain XML text.
func Read(data []byte, filename string) (*Doc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mxl", ".zip":
		text, err := extractRootFile(data)
		if err != nil {
			return nil, err
		}
		data = text
	}
	return Decode(bytes.NewReader(data))
}

func extractRootFile(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ImportError{Cause: "archive is not readable: " + err.Error()}
	}

	desc, err := readEntry(zr, containerPath)
	if err != nil {
		return nil, &ImportError{Cause: "archive has no " + containerPath}
	}

	var c container
	if err := xml.Unmarshal(desc, &c); err != nil {
		return nil, &ImportError{Cause: "container descriptor is not well-formed XML: " + err.Error()}
	}
	var path string
	for _, rf := range c.Rootfiles {
		if rf.FullPath != "" {
			path = rf.FullPath
			break
		}
	}
	if path == "" {
		return nil, &ImportError{Cause: "container descriptor names no rootfile"}
	}

	text, err := readEntry(zr, path)
	if err != nil {
		return nil, &ImportError{Cause: "rootfile " + path + " is missing from the archive"}
	}
	return text, nil
}

func readEntry(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
