package quizdeck

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnknownFormat = errors.New("unknown input format")
	ErrDecodeInput   = errors.New("input is not valid UTF-8")
	ErrEncodeDeck    = errors.New("deck encoding failed")
	ErrDecodeDeck    = errors.New("deck decoding failed")
	ErrWriteDeck     = errors.New("failed to write deck file")
	ErrNilDeck       = errors.New("deck cannot be nil")

	// Symbol syntax validation errors.
	ErrEmptyMarker       = errors.New("option marker cannot be empty")
	ErrInvalidMarker     = errors.New("option marker must be a single character")
	ErrEmptyCorrectToken = errors.New("correct token cannot be empty")
	ErrEmptySectionTitle = errors.New("section prefix cannot be empty")
)
