package core

import "fmt"

// AddErrorKind classifies why an add did not change the collection.
type AddErrorKind int

const (
	KindEmptyQuery    AddErrorKind = iota + 1 // blank input, no I/O attempted
	KindLookupFailed                          // remote lookup yielded no usable project
	KindPersistFailed                         // storage write failed
	KindAlreadyAdded                          // project is already saved (reject policy)
)

func (k AddErrorKind) String() string {
	switch k {
	case KindEmptyQuery:
		return "empty query"
	case KindLookupFailed:
		return "lookup failed"
	case KindPersistFailed:
		return "persist failed"
	case KindAlreadyAdded:
		return "already added"
	}

	return ""
}

// Sentinels for errors.Is; they match any *AddError of the same kind.
var (
	ErrEmptyQuery    = &AddError{Kind: KindEmptyQuery}
	ErrLookupFailed  = &AddError{Kind: KindLookupFailed}
	ErrPersistFailed = &AddError{Kind: KindPersistFailed}
	ErrAlreadyAdded  = &AddError{Kind: KindAlreadyAdded}
)

// AddError is returned by every failed add. The collection is unchanged.
type AddError struct {
	Kind  AddErrorKind
	Query string
	Err   error
}

func (e *AddError) Error() string {
	msg := e.Kind.String()

	if e.Query != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Query)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *AddError) Unwrap() error {
	return e.Err
}

func (e *AddError) Is(target error) bool {
	t, ok := target.(*AddError)

	return ok && t.Kind == e.Kind
}

// Message is the text shown to the user in the error slot.
func (e *AddError) Message() string {
	switch e.Kind {
	case KindEmptyQuery:
		return "Enter the repository as owner/name"
	case KindLookupFailed:
		return "Could not find that repository"
	case KindPersistFailed:
		return "Could not save the repository list"
	case KindAlreadyAdded:
		return "Repository is already in the list"
	}

	return "Something went wrong"
}
