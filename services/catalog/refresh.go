package catalog

import (
	"context"
	"time"

	catalogRepo "motorhub/database/repository/catalog"
	"motorhub/models"

	"go.uber.org/zap"
)

// PromoSink receives the promotion definitions carried by a snapshot.
type PromoSink interface {
	Load(promos []models.Promotion)
}

// Refresher periodically re-fetches the catalog feed and swaps the
// snapshot in atomically, so price and discount updates from the
// promotions feed land without any reader observing torn state.
// Promotion definitions ride along to keep the promo registry in step.
type Refresher struct {
	Repo     catalogRepo.CatalogRepository
	Store    *Store
	Promos   PromoSink
	Interval time.Duration
	Logger   *zap.Logger
}

// RefreshOnce fetches one snapshot and installs it.
func (r *Refresher) RefreshOnce(ctx context.Context) error {
	snapshot, err := r.Repo.FetchSnapshot(ctx)
	if err != nil {
		return err
	}
	r.Store.Replace(snapshot)
	if r.Promos != nil {
		r.Promos.Load(snapshot.Promotions)
	}
	r.Logger.Info("catalog snapshot replaced",
		zap.Int64("version", snapshot.Version),
		zap.Int("products", len(snapshot.Products)),
		zap.Int("services", len(snapshot.Services)))
	return nil
}

// Run refreshes on the configured interval until the context ends.
// Failures keep the previous snapshot in place.
func (r *Refresher) Run(ctx context.Context) {
	if r.Interval <= 0 {
		return
	}
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RefreshOnce(ctx); err != nil {
				r.Logger.Warn("catalog refresh failed, keeping current snapshot", zap.Error(err))
			}
		}
	}
}
