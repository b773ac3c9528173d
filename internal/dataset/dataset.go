// Package dataset loads the validation set: back-to-back serialized
// records, possibly in a legacy single-byte text encoding.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Example is one validation-set entry. Order on disk is significant:
// baseline predictions are aligned against it positionally.
type Example struct {
	Code      string `json:"code"`
	IsCorrect bool   `json:"is_correct"`
}

// Load reads every record from the file at path until the stream is
// exhausted. encodingName is an IANA charset name ("latin-1" by default
// upstream); embedded strings are transcoded to UTF-8 before decoding.
func Load(path, encodingName string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading validation set: %w", err)
	}
	defer f.Close()

	dec, err := newDecoder(encodingName)
	if err != nil {
		return nil, err
	}

	jd := json.NewDecoder(dec.Reader(f))
	var examples []Example
	for {
		var ex Example
		if err := jd.Decode(&ex); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("parsing validation set %s record %d: %w", path, len(examples), err)
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

// CheckEncoding reports whether name resolves to a supported charset.
// Config validation uses it so a bad encoding fails at load time rather
// than mid-sweep.
func CheckEncoding(name string) error {
	_, err := newDecoder(name)
	return err
}

func newDecoder(name string) (*encoding.Decoder, error) {
	alias := strings.ToLower(strings.TrimSpace(name))
	// "latin-1" is the name the archival data ships with; the IANA
	// registry spells it without the hyphen.
	if alias == "latin-1" {
		alias = "latin1"
	}
	enc, err := ianaindex.IANA.Encoding(alias)
	if err != nil {
		return nil, fmt.Errorf("looking up encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("encoding %q is not supported", name)
	}
	return enc.NewDecoder(), nil
}
