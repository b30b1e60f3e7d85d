package store

import (
	"github.com/govkit/governance-service/internal/domain"
)

// WorkstreamStore persists the workstream collection.
type WorkstreamStore struct {
	*collection[domain.Workstream]
}
