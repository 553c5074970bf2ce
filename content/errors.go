package content

import "errors"

var (
	ErrNoTabs          = errors.New("deck has no tabs")
	ErrEmptyTitle      = errors.New("empty tab title")
	ErrNodeKind        = errors.New("invalid node kind")
	ErrConstraintCount = errors.New("constraint count mismatch")
	ErrConstraint      = errors.New("invalid constraint")
	ErrPercentRange    = errors.New("percent out of range")
	ErrSelectedRange   = errors.New("selected index out of range")
	ErrStyle           = errors.New("invalid style")
)

// ValidationError locates a problem in the content tree
type ValidationError struct {
	Path   string // e.g. tabs[2].root.split.children[1]
	Kind   error  // one of the Err* sentinels
	Detail string
}

func (e *ValidationError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Path == "" {
		return msg
	}
	return e.Path + ": " + msg
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(path string, kind error, detail string) error {
	return &ValidationError{Path: path, Kind: kind, Detail: detail}
}
