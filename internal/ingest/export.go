package ingest

import (
	"context"
	"fmt"
	"sort"

	"wealthdesk/internal/repository"
)

// ClientIDs returns the distinct clients holding a SIP or a policy,
// sorted. Deleted records are included so the export covers everything
// that was ever imported.
func (i Importer) ClientIDs(ctx context.Context, tx repository.Queryer, agentID *string) ([]string, error) {
	sips, err := i.SipRecordRepository.List(ctx, tx, repository.SipRecordListFilter{
		AgentID:        agentID,
		IncludeDeleted: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sip records: %w", err)
	}

	policies, err := i.InsuranceRecordRepository.List(ctx, tx, repository.InsuranceRecordListFilter{
		AgentID:        agentID,
		IncludeDeleted: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get insurance records: %w", err)
	}

	seen := map[string]bool{}
	for _, s := range sips {
		seen[s.ClientID] = true
	}
	for _, p := range policies {
		seen[p.ClientID] = true
	}

	out := make([]string, 0, len(seen))
	for id := range seen {
		if id != "" {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}
