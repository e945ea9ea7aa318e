package quizdeck

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alnah/go-quizdeck/internal/fileutil"
)

// jsonIndent is the per-level indentation of the written deck.
const jsonIndent = "  "

// Encode renders the deck as indented JSON. Non-ASCII and HTML characters
// are written literally and no trailing newline is added, so encoding is
// deterministic for a given deck.
func Encode(d *Deck) ([]byte, error) {
	if d == nil {
		return nil, ErrNilDeck
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(d.withEmptySlices()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeDeck, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile encodes the deck and replaces path with the result.
// An existing file is overwritten without confirmation.
func WriteFile(path string, d *Deck) error {
	data, err := Encode(d)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDeck, err)
	}
	return nil
}

// withEmptySlices returns a shallow copy where nil slices become empty, so
// they encode as [] rather than null.
func (d *Deck) withEmptySlices() *Deck {
	out := &Deck{Title: d.Title, Questions: make([]Question, len(d.Questions))}
	for i, q := range d.Questions {
		if q.Options == nil {
			q.Options = []Option{}
		}
		if q.Correct == nil {
			q.Correct = []string{}
		}
		out.Questions[i] = q
	}
	return out
}

// Decode parses a deck previously written by Encode.
// Unknown keys are rejected.
func Decode(data []byte) (*Deck, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var d Deck
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeDeck, err)
	}
	if d.Questions == nil {
		d.Questions = []Question{}
	}
	return &d, nil
}
