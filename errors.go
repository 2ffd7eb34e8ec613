package chartsdk

import "errors"

// InvalidDate is returned in place of a formatted value when the input can't
// be turned into a calendar instant.
const InvalidDate = "Invalid Date"

// ErrInvalidOptions indicates a formatting options bag failed validation.
var ErrInvalidOptions = errors.New("chartsdk: invalid formatting options")

// ErrUnsupportedFormat marks option files with an extension no decoder handles.
var ErrUnsupportedFormat = errors.New("chartsdk: unsupported file format")

// ErrLocaleNotFound indicates no date format table matched the requested locale.
var ErrLocaleNotFound = errors.New("chartsdk: locale not found")
