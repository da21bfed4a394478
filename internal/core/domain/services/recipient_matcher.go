package services

import (
	"strings"
	"unicode/utf8"

	"mailroom/internal/core/domain/model/recipient"
)

// quarantineQueryLength is the minimum query length before a miss against
// the directory flags the parcel for review.
const quarantineQueryLength = 3

// MatchResult describes the outcome of validating a free-text recipient name
// against the directory.
type MatchResult struct {
	// Candidates are the directory entries whose names contain the query,
	// in directory order.
	Candidates []*recipient.Entry

	// Exact is the entry whose name equals the query, or nil.
	Exact *recipient.Entry

	// Quarantined reports that the query is long enough to be a real name
	// attempt yet matches nothing in the directory.
	Quarantined bool

	// ClearRedLabel reports that an exact match was found, so a red label
	// applied because of an earlier unknown-recipient state should be removed.
	ClearRedLabel bool
}

// Matcher validates a typed recipient name against directory entries.
// Consumers depend on this capability so the linear scan can be swapped for
// an indexed implementation if the directory outgrows it.
type Matcher interface {
	Match(query string, directory []*recipient.Entry) MatchResult
}

// RecipientMatcher is a domain service that validates the free-text recipient
// name entered at intake against the recipient directory. It is the plain
// linear-scan Matcher, sized for an in-memory directory.
//
// Key responsibilities:
//   - Suggesting directory entries while the operator types
//   - Detecting an exact match to confirm the recipient
//   - Flagging unrecognized names for review (quarantine)
//
// Business rules:
//   - Matching is case-insensitive; candidates are substring matches
//   - A query is quarantined only when it is longer than three characters
//     and has no candidates and no exact match
//   - An exact match lifts the unknown-recipient red label
//   - An empty query is neutral: no candidates, no quarantine
type RecipientMatcher struct{}

// NewRecipientMatcher creates a new RecipientMatcher instance.
func NewRecipientMatcher() RecipientMatcher {
	return RecipientMatcher{}
}

// Match evaluates the query against the directory entries.
func (RecipientMatcher) Match(query string, directory []*recipient.Entry) MatchResult {
	if query == "" {
		return MatchResult{}
	}

	lowered := strings.ToLower(query)

	var result MatchResult
	for _, entry := range directory {
		name := strings.ToLower(entry.Name())
		if strings.Contains(name, lowered) {
			result.Candidates = append(result.Candidates, entry)
		}
		if result.Exact == nil && name == lowered {
			result.Exact = entry
		}
	}

	if result.Exact != nil {
		result.ClearRedLabel = true
		return result
	}

	// Query length counts characters, not bytes: an accented fragment must
	// not tip over the threshold while the name is still being typed.
	if len(result.Candidates) == 0 && utf8.RuneCountInString(query) > quarantineQueryLength {
		result.Quarantined = true
	}

	return result
}
