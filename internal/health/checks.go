package health

import (
	"context"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/nurshop/storefront/internal/config"
	"github.com/nurshop/storefront/internal/storage"
)

// NewHealthHandler wires a storage round-trip check and, when redis backs the
// store, a redis connectivity check.
func NewHealthHandler(cfg *config.Config, store storage.Store) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "storage",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {

				probe := map[string]int64{"ts": time.Now().UnixMilli()}
				if err := store.Set(ctx, "nur_healthcheck", probe); err != nil {
					return fmt.Errorf("storage write failed: %w", err)
				}

				var back map[string]int64
				if _, err := store.Get(ctx, "nur_healthcheck", &back); err != nil {
					return fmt.Errorf("storage read failed: %w", err)
				}

				return nil
			},
		},
	}

	if cfg.Storage.Driver == "redis" {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.Redis.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "nurshop-storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
