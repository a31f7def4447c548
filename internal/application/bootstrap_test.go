package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	kind  domain.ServiceType
	err   error
	calls *[]domain.ServiceType
}

func (s fakeService) Descriptor() domain.Service {
	return domain.NewServiceDescriptor(s.kind)
}

func (s fakeService) Init(context.Context) error {
	*s.calls = append(*s.calls, s.kind)
	return s.err
}

func TestBootstrapRunsServicesInOrder(t *testing.T) {
	var calls []domain.ServiceType
	bootstrap := NewBootstrap(nil, zerolog.Nop())

	report, err := bootstrap.Run(context.Background(),
		Required(fakeService{kind: domain.ServiceApp, calls: &calls}),
		Optional(fakeService{kind: domain.ServiceUpdater, calls: &calls}),
		Required(fakeService{kind: domain.ServiceBackend, calls: &calls}),
	)
	require.NoError(t, err)
	assert.Equal(t, []domain.ServiceType{domain.ServiceApp, domain.ServiceUpdater, domain.ServiceBackend}, calls)
	assert.Len(t, report.Results, 3)
	assert.Empty(t, report.Failed())
}

func TestBootstrapReportsOptionalFailure(t *testing.T) {
	var calls []domain.ServiceType
	bootstrap := NewBootstrap(nil, zerolog.Nop())

	report, err := bootstrap.Run(context.Background(),
		Required(fakeService{kind: domain.ServiceApp, calls: &calls}),
		Optional(fakeService{kind: domain.ServiceUpdater, err: domain.ErrUpdaterDisabled, calls: &calls}),
		Required(fakeService{kind: domain.ServiceBackend, calls: &calls}),
	)
	require.NoError(t, err)
	assert.Len(t, calls, 3)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, domain.ServiceUpdater, failed[0].Service)
	assert.False(t, failed[0].Required)
	assert.ErrorIs(t, report.Err(domain.ServiceUpdater), domain.ErrUpdaterDisabled)
	assert.NoError(t, report.Err(domain.ServiceApp))
}

func TestBootstrapStopsOnRequiredFailure(t *testing.T) {
	var calls []domain.ServiceType
	bootstrap := NewBootstrap(nil, zerolog.Nop())
	bindErr := errors.New("address already in use")

	report, err := bootstrap.Run(context.Background(),
		Required(fakeService{kind: domain.ServiceBackend, err: bindErr, calls: &calls}),
		Optional(fakeService{kind: domain.ServiceSVN, calls: &calls}),
	)
	require.ErrorIs(t, err, bindErr)
	assert.ErrorContains(t, err, "init backend service")
	assert.Equal(t, []domain.ServiceType{domain.ServiceBackend}, calls)
	assert.Len(t, report.Results, 1)
}

func TestBootstrapHonorsCanceledContext(t *testing.T) {
	var calls []domain.ServiceType
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBootstrap(nil, zerolog.Nop()).Run(ctx, Required(fakeService{kind: domain.ServiceApp, calls: &calls}))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)
}
