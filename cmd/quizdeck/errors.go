package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrMissingInput    = errors.New("missing input path")
	ErrInputNotFound   = errors.New("file not found")
	ErrReadInput       = errors.New("failed to read input")
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
	ErrReadDeck        = errors.New("failed to read deck")
	ErrCheckFailed     = errors.New("deck has structural issues")
	ErrInvalidFlags    = errors.New("invalid flags")
	ErrUnknownCommand  = errors.New("unknown command")
)
