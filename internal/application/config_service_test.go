package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigServiceSeedPersistsDefaultsOnFirstRun(t *testing.T) {
	store := mocks.NewMockStateStore(t)
	platform := mocks.NewMockPlatform(t)
	service := NewConfigService(store, platform)

	want := domain.DefaultConfig("6.1.7601")
	store.EXPECT().Load(mockAnyContext()).Return(domain.Config{}, domain.ErrStateNotFound).Once()
	platform.EXPECT().Release().Return("6.1.7601")
	store.EXPECT().Save(mockAnyContext(), want).Return(nil).Once()

	cfg, seeded, err := service.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.True(t, cfg.Compatibility.TransparentFallback)
	assert.Equal(t, want, cfg)
}

func TestConfigServiceSeedKeepsExistingState(t *testing.T) {
	store := mocks.NewMockStateStore(t)
	service := NewConfigService(store, mocks.NewMockPlatform(t))

	existing := domain.DefaultConfig("10")
	existing.Compatibility.ZoomFix = true
	store.EXPECT().Load(mockAnyContext()).Return(existing, nil).Once()

	cfg, seeded, err := service.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.True(t, cfg.Compatibility.ZoomFix)
}

func TestConfigServiceSeedReturnsLoadError(t *testing.T) {
	store := mocks.NewMockStateStore(t)
	service := NewConfigService(store, nil)

	store.EXPECT().Load(mockAnyContext()).Return(domain.Config{}, errors.New("disk gone")).Once()

	_, _, err := service.Seed(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "load state")
}

func TestConfigServiceSetMainWindowBounds(t *testing.T) {
	store := mocks.NewMockStateStore(t)
	service := NewConfigService(store, nil)

	current := domain.DefaultConfig("10")
	want := current.Clone()
	want.Window.Main.Width = 1440
	want.Window.Main.Height = 900

	store.EXPECT().Load(mockAnyContext()).Return(current, nil).Once()
	store.EXPECT().Save(mockAnyContext(), want).Return(nil).Once()

	require.NoError(t, service.SetMainWindowBounds(context.Background(), 1440, 900))
}

func TestConfigServiceRejectsInvalidBounds(t *testing.T) {
	service := NewConfigService(mocks.NewMockStateStore(t), nil)

	err := service.SetMainWindowBounds(context.Background(), 0, 900)
	require.Error(t, err)
}

func TestConfigServiceAddAndRemoveProject(t *testing.T) {
	store := mocks.NewMockStateStore(t)
	service := NewConfigService(store, nil)

	empty := domain.DefaultConfig("10")
	withProject := empty.Clone()
	withProject.Project["alpha"] = domain.ProjectConfig{Path: "/src/alpha"}

	store.EXPECT().Load(mockAnyContext()).Return(empty, nil).Once()
	store.EXPECT().Save(mockAnyContext(), withProject).Return(nil).Once()
	require.NoError(t, service.AddProject(context.Background(), "alpha", "/src/alpha"))
	assert.Empty(t, empty.Project)

	store.EXPECT().Load(mockAnyContext()).Return(withProject, nil).Once()
	store.EXPECT().Save(mockAnyContext(), empty).Return(nil).Once()
	require.NoError(t, service.RemoveProject(context.Background(), "alpha"))

	store.EXPECT().Load(mockAnyContext()).Return(empty, nil).Once()
	err := service.RemoveProject(context.Background(), "alpha")
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found")
}

func TestConfigServiceResetOverwritesState(t *testing.T) {
	store := mocks.NewMockStateStore(t)
	platform := mocks.NewMockPlatform(t)
	platform.EXPECT().Release().Return("8.1").Once()

	want := domain.DefaultConfig("8.1")
	store.EXPECT().Save(mockAnyContext(), want).Return(nil).Once()

	got, err := NewConfigService(store, platform).Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.Compatibility.TransparentFallback)
}
