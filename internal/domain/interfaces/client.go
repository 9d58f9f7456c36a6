package interfaces

import (
	"context"

	domaintypes "biblia/internal/domain/types"
)

// BibleClient is how we talk to the remote Bible API, all with context.
type BibleClient interface {
	Lookup(ctx context.Context, q domaintypes.Query) (domaintypes.Result, error)
}
