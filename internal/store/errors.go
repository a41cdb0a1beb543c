package store

import "errors"

// Sentinel errors returned by the document store and upload storage.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrCreatingDirectory is returned when the data or upload directory
	// cannot be created.
	ErrCreatingDirectory = errors.New("error creating directory")

	// ErrReadingDocument is returned when a document file exists but cannot
	// be read.
	ErrReadingDocument = errors.New("error reading document")

	// ErrCorruptDocument is returned when a document file is not valid JSON
	// for the expected shape.
	ErrCorruptDocument = errors.New("corrupt document")

	// ErrEncodingDocument is returned when a value cannot be encoded.
	ErrEncodingDocument = errors.New("error encoding document")

	// ErrWritingDocument is returned when the temporary file cannot be
	// written, synced or renamed over the target.
	ErrWritingDocument = errors.New("error writing document")

	ErrWritingUpload = errors.New("error writing upload")
)
