package downdetect

import (
	"context"
	"fmt"
	"time"
)

type LogServicePinger interface {
	Ping(ctx context.Context) error
}

type DowndetectService struct {
	logServicePinger LogServicePinger
}

const availabilityCheckTimeout = 5 * time.Second

// IsAvailable reports whether the dependencies needed to show logs answer.
func (s *DowndetectService) IsAvailable(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, availabilityCheckTimeout)
	defer cancel()

	if err := s.logServicePinger.Ping(ctx); err != nil {
		return fmt.Errorf("log service check failed: %w", err)
	}

	return nil
}
