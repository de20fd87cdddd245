package health

import (
	"context"
	"errors"
	"time"

	"github.com/Lupao-eth/trip-task/internal/pkg/database"
	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	natspkg "github.com/Lupao-eth/trip-task/internal/pkg/nats"
)

// Checker verifies the health of one dependency
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// Report is the aggregate result of all registered checks
type Report struct {
	Healthy   bool              `json:"healthy"`
	Checks    map[string]string `json:"checks"`
	CheckedAt time.Time         `json:"checked_at"`
}

// HealthService runs registered dependency checks
type HealthService struct {
	log      *logger.ZapLogger
	checkers map[string]Checker
}

// NewHealthService creates a new health service
func NewHealthService(log *logger.ZapLogger) *HealthService {
	return &HealthService{
		log:      log,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a named dependency checker
func (s *HealthService) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs all registered checkers with a short timeout each
func (s *HealthService) Check(ctx context.Context) Report {
	report := Report{
		Healthy:   true,
		Checks:    make(map[string]string, len(s.checkers)),
		CheckedAt: time.Now(),
	}

	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := checker.Check(checkCtx)
		cancel()

		if err != nil {
			report.Healthy = false
			report.Checks[name] = err.Error()
			s.log.Warn("Health check failed",
				logger.String("check", name),
				logger.Err(err))
			continue
		}
		report.Checks[name] = "ok"
	}

	return report
}

// NewPostgresHealthChecker checks PostgreSQL connectivity
func NewPostgresHealthChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetDB().PingContext(ctx)
	})
}

// NewRedisHealthChecker checks Redis connectivity
func NewRedisHealthChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetClient().Ping(ctx).Err()
	})
}

// NewNATSHealthChecker checks the NATS connection state
func NewNATSHealthChecker(client *natspkg.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return errors.New("nats connection is not established")
		}
		return nil
	})
}
