package fsio

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// DetectMIME detects the MIME type of the file at path from its
// contents and returns the type string together with its canonical
// extension (empty when the type has none).
func DetectMIME(path string) (mime, extension string, err error) {
	if _, err := statFile(path); err != nil {
		return "", "", err
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", "", fmt.Errorf("detecting MIME type of %q: %w", path, err)
	}

	return mtype.String(), mtype.Extension(), nil
}
