package health

import (
	"fmt"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthHttp "github.com/hellofresh/health-go/v5/checks/http"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// NewHealthHandler reports Redis as required and each downstream service as
// optional: the storefront still answers, partially, when one of them is down.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		},
	}

	for name, baseURL := range map[string]string{
		"cart-service":    cfg.Services.CartURL,
		"member-service":  cfg.Services.MemberURL,
		"product-service": cfg.Services.ProductURL,
	} {
		checks = append(checks, health.Config{
			Name:      name,
			Timeout:   3 * time.Second,
			SkipOnErr: true,
			Check: healthHttp.New(healthHttp.Config{
				URL:            strings.TrimRight(baseURL, "/") + cfg.Services.HealthPath,
				RequestTimeout: 3 * time.Second,
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
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
