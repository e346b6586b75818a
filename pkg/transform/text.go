package transform

import (
	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/arthur-debert/pkgshift/pkg/errors"
	"golang.org/x/text/encoding"
	xtransform "golang.org/x/text/transform"
)

// decodeText returns an entry's content as UTF-8 text. rule names the
// pattern or setting that required the text view.
func decodeText(e archive.Entry, rule string) (string, error) {
	valid, _, err := xtransform.Bytes(encoding.UTF8Validator, e.Content)
	if err != nil {
		return "", errors.Decoding(err, e.Name, rule)
	}
	return string(valid), nil
}
