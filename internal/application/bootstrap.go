package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/rs/zerolog"
)

type InitResult struct {
	Service  domain.ServiceType
	Required bool
	Err      error
	Duration time.Duration
}

type InitReport struct {
	Results []InitResult
}

func (r InitReport) Failed() []InitResult {
	failed := make([]InitResult, 0)
	for _, result := range r.Results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return failed
}

func (r InitReport) Err(service domain.ServiceType) error {
	for _, result := range r.Results {
		if result.Service == service {
			return result.Err
		}
	}
	return nil
}

// ServiceEntry pairs a service with whether its Init failure aborts startup.
type ServiceEntry struct {
	Service  ports.Service
	Required bool
}

func Required(service ports.Service) ServiceEntry {
	return ServiceEntry{Service: service, Required: true}
}

func Optional(service ports.Service) ServiceEntry {
	return ServiceEntry{Service: service}
}

type Bootstrap struct {
	clock  ports.Clock
	logger zerolog.Logger
}

func NewBootstrap(clock ports.Clock, logger zerolog.Logger) *Bootstrap {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Bootstrap{clock: clock, logger: logger}
}

// Run initializes each service once, in order. Optional failures are logged
// and reported; the first required failure stops the run.
func (b *Bootstrap) Run(ctx context.Context, entries ...ServiceEntry) (InitReport, error) {
	report := InitReport{Results: make([]InitResult, 0, len(entries))}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		kind := entry.Service.Descriptor().Type()
		started := b.clock.Now()
		err := entry.Service.Init(ctx)
		result := InitResult{
			Service:  kind,
			Required: entry.Required,
			Err:      err,
			Duration: b.clock.Now().Sub(started),
		}
		report.Results = append(report.Results, result)

		if err == nil {
			b.logger.Debug().Str("service", kind.String()).Dur("took", result.Duration).Msg("service initialized")
			continue
		}
		if entry.Required {
			b.logger.Error().Err(err).Str("service", kind.String()).Msg("required service failed to initialize")
			return report, fmt.Errorf("init %s service: %w", kind, err)
		}
		b.logger.Warn().Err(err).Str("service", kind.String()).Msg("optional service failed to initialize")
	}

	return report, nil
}
