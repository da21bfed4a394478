package queries

import (
	"context"

	"mailroom/internal/core/domain/model/recipient"
	"mailroom/internal/core/domain/services"
	"mailroom/internal/core/ports"
)

// MatchRecipientsQueryHandler validates recipient names against the
// directory through the Matcher capability.
type MatchRecipientsQueryHandler struct {
	directory ports.RecipientDirectory
	matcher   services.Matcher
}

// NewMatchRecipientsQueryHandler creates a handler for recipient matching.
func NewMatchRecipientsQueryHandler(
	directory ports.RecipientDirectory,
	matcher services.Matcher,
) MatchRecipientsQueryHandler {
	return MatchRecipientsQueryHandler{
		directory: directory,
		matcher:   matcher,
	}
}

// Handle evaluates the text against the directory and returns suggestions,
// the exact match when present, and the quarantine flag.
func (h MatchRecipientsQueryHandler) Handle(
	ctx context.Context,
	query MatchRecipientsQuery,
) (MatchRecipientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return MatchRecipientsQueryResponse{}, err
	}

	entries, err := h.directory.GetAll(ctx)
	if err != nil {
		return MatchRecipientsQueryResponse{}, err
	}

	result := h.matcher.Match(query.Text(), entries)

	response := MatchRecipientsQueryResponse{
		Candidates:    make([]RecipientView, 0, len(result.Candidates)),
		Quarantined:   result.Quarantined,
		ClearRedLabel: result.ClearRedLabel,
	}
	for _, entry := range result.Candidates {
		response.Candidates = append(response.Candidates, recipientView(entry))
	}
	if result.Exact != nil {
		view := recipientView(result.Exact)
		response.Exact = &view
	}

	return response, nil
}

func recipientView(entry *recipient.Entry) RecipientView {
	return RecipientView{
		ID:   entry.ID().String(),
		Name: entry.Name(),
		Role: entry.Role().String(),
	}
}
