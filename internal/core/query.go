package core

import (
	"errors"
	"strings"

	"github.com/inovacc/ghexplorer/internal/giturl"
)

// QueryState is the transient input side of the dashboard. It is never
// persisted.
type QueryState struct {
	Query     string
	LastError string
}

// Apply records the outcome of a submission. Success clears both fields;
// failure keeps the query so the user can correct it and shows the error.
func (q *QueryState) Apply(err error) {
	if err == nil {
		q.Query = ""
		q.LastError = ""

		return
	}

	q.LastError = UserMessage(err)
}

// HasError reports whether an error message is being shown.
func (q QueryState) HasError() bool {
	return q.LastError != ""
}

// UserMessage maps err to the text shown to the user.
func UserMessage(err error) string {
	var addErr *AddError
	if errors.As(err, &addErr) {
		return addErr.Message()
	}

	return "Something went wrong"
}

// NormalizeQuery trims the input and reduces pasted GitHub URLs
// (https://github.com/owner/name, git@github.com:owner/name.git) to
// "owner/name". Anything else is returned trimmed but otherwise verbatim.
func NormalizeQuery(query string) string {
	q := strings.TrimSpace(query)

	if !strings.Contains(q, "github.com") {
		return q
	}

	repo, err := giturl.ParseRepository(q)
	if err != nil {
		return q
	}

	return repo.FullName()
}
