package clipdata

import "errors"

// ErrorKind classifies pipeline failures by how the run must react to them.
type ErrorKind int

const (
	// KindTransport: remote data unreachable or non-success status. Fatal to the country pipeline.
	KindTransport ErrorKind = iota + 1
	// KindItem: one flag download or one data file failed. Logged, the run continues.
	KindItem
	// KindMissingResource: a required file (the manifest) is absent. The step is skipped.
	KindMissingResource
	// KindUsage: bad arguments or input paths. Reported before any work begins.
	KindUsage
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindItem:
		return "item"
	case KindMissingResource:
		return "missing-resource"
	case KindUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// Error is the pipeline error type. Item names the offending unit (URL, file, country code).
type Error interface {
	Error() string
	Unwrap() error
	Kind() ErrorKind
	Item() string
}

type DefaultError struct {
	err     error
	kind    ErrorKind
	item    string
	message string
}

func (pe DefaultError) Error() string {
	if pe.err == nil {
		return pe.message
	}
	return pe.message + ": " + pe.err.Error()
}

func (pe *DefaultError) Unwrap() error {
	return pe.err
}

func (pe *DefaultError) Kind() ErrorKind {
	return pe.kind
}

func (pe *DefaultError) Item() string {
	return pe.item
}

func newPipelineError(kind ErrorKind, item string, message string, err error) error {
	return &DefaultError{kind: kind, item: item, message: message, err: err}
}

// IsKind reports whether err (or anything it wraps) is a pipeline Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe Error
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Kind() == kind
}
