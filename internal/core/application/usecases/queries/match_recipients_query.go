package queries

import (
	"errors"

	"mailroom/internal/pkg/guard"
)

var ErrMatchRecipientsQueryIsNotConstructed = errors.New(
	"MatchRecipientsQuery must be created via NewMatchRecipientsQuery constructor",
)

// MatchRecipientsQuery validates a recipient name being typed at intake
// against the directory and returns suggestions.
//
// Example:
//
//	query := NewMatchRecipientsQuery("mar")
//	handler := NewMatchRecipientsQueryHandler(directory, matcher)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, candidate := range result.Candidates {
//	    fmt.Println(candidate.Name)
//	}
type MatchRecipientsQuery struct {
	text string

	guard guard.ConstructorGuard
}

// NewMatchRecipientsQuery creates a match query for the given text.
// Empty text is allowed and yields a neutral result.
func NewMatchRecipientsQuery(text string) MatchRecipientsQuery {
	return MatchRecipientsQuery{
		text:  text,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrMatchRecipientsQueryIsNotConstructed if validation fails.
func (q MatchRecipientsQuery) Validate() error {
	return q.guard.Validate(ErrMatchRecipientsQueryIsNotConstructed)
}

// Text returns the name fragment being validated.
func (q MatchRecipientsQuery) Text() string {
	return q.text
}

// RecipientView is the read model for a directory entry.
type RecipientView struct {
	ID   string
	Name string
	Role string
}

// MatchRecipientsQueryResponse carries the outcome of a directory match.
type MatchRecipientsQueryResponse struct {
	// Candidates are directory entries whose names contain the text.
	Candidates []RecipientView

	// Exact is set when an entry name equals the text.
	Exact *RecipientView

	// Quarantined reports the text looks like a real name attempt but is
	// unknown to the directory; intake will flag the parcel.
	Quarantined bool

	// ClearRedLabel reports an exact match, so an unknown-recipient red
	// label should be removed.
	ClearRedLabel bool
}
