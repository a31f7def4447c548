package application

import (
	"context"
	"testing"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/bnema/assistant-shell/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppServiceInitSeedsAndOpensMainWindow(t *testing.T) {
	host := mocks.NewMockWindowHost(t)
	store := mocks.NewMockStateStore(t)
	platform := mocks.NewMockPlatform(t)
	windows := newTestWindowManager(t, host, store)
	config := NewConfigService(store, platform)

	seeded := domain.DefaultConfig("12")
	platform.EXPECT().Release().Return("12").Once()
	store.EXPECT().Load(mockAnyContext()).Return(domain.Config{}, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mockAnyContext(), seeded).Return(nil).Once()
	store.EXPECT().Load(mockAnyContext()).Return(seeded, nil).Once()
	host.EXPECT().Create(mockAnyContext(), ports.WindowSpec{
		ID:     "win-1",
		Title:  "Assistant",
		Route:  "/main",
		Bounds: domain.Bounds{Width: 1080, Height: 720},
		Show:   true,
	}).Return(nil).Once()

	service := NewAppService(config, windows, zerolog.Nop())
	require.NoError(t, service.Init(context.Background()))
	assert.Equal(t, domain.ServiceApp, service.Descriptor().Type())

	handle, err := windows.Lookup("win-1")
	require.NoError(t, err)
	assert.Equal(t, "/main", handle.Route)
}

func TestUpdaterServiceInit(t *testing.T) {
	tests := []struct {
		name    string
		feed    string
		wantErr error
		errText string
	}{
		{name: "disabled", feed: "  ", wantErr: domain.ErrUpdaterDisabled},
		{name: "bad scheme", feed: "ftp://updates.example.com/feed", errText: "http or https"},
		{name: "missing host", feed: "https:///feed", errText: "host is required"},
		{name: "valid", feed: "https://updates.example.com/feed.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUpdaterService(tt.feed, zerolog.Nop()).Init(context.Background())
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				require.NoError(t, err)
			}
		})
	}
}
