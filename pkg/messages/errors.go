package messages

import "errors"

var (
	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading messages file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read messages file")
	ErrFailedToParseFile    = errors.New("failed to parse messages file")
	ErrEmptyFile            = errors.New("messages file is empty")
	ErrUnsupportedFile      = errors.New("unsupported messages file extension")
)
