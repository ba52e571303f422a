package sqlc

import (
	"context"
	"net"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager records per-server counters. A nil manager
// is valid and records nothing.
type AnalyticsManager struct {
	queries  Querier
	serverIp pqtype.Inet
}

func NewAnalyticsManager(queries Querier, serverIpNet net.IPNet) *AnalyticsManager {
	return &AnalyticsManager{
		queries:  queries,
		serverIp: pqtype.Inet{IPNet: serverIpNet, Valid: true},
	}
}

func (a *AnalyticsManager) ServerIp() pqtype.Inet {
	return a.serverIp
}

func (a *AnalyticsManager) IncrementBoardsCreatedCount(ctx context.Context) error {
	if a == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	return a.queries.IncrementBoardsCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) IncrementShipsSunkCount(ctx context.Context) error {
	if a == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	return a.queries.IncrementShipsSunkCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetBoardsCreatedCount(ctx context.Context) (int64, error) {
	if a == nil {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	return a.queries.GetBoardsCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetShipsSunkCount(ctx context.Context) (int64, error) {
	if a == nil {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	return a.queries.GetShipsSunkCount(ctx, a.serverIp)
}
