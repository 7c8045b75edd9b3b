package fmerrors

import (
	"errors"
)

var (
	// ErrInvalidInput indicates an absent or malformed argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFilename indicates a name that is not usable as a filename.
	ErrInvalidFilename = errors.New("invalid filename")

	// ErrNotADirectory indicates an existing path component is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrHomeNotFound indicates the user home directory could not be located.
	ErrHomeNotFound = errors.New("home directory not found")

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrYAMLMarshal indicates an error occurred while marshaling YAML.
	ErrYAMLMarshal = errors.New("marshal YAML")

	// ErrScanFailed indicates a scan aborted before producing a report.
	ErrScanFailed = errors.New("scan failed")
)
