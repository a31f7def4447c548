package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowConstructorsReportFixedTag(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		want   WindowType
	}{
		{name: "main", window: NewMainWindow(), want: WindowMain},
		{name: "login", window: NewLoginWindow(), want: WindowLogin},
		{name: "setting", window: NewSettingWindow(), want: WindowSetting},
		{name: "project", window: NewProjectWindow("alpha"), want: WindowProjectID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Type())

			copied := tt.window
			assert.Equal(t, tt.want, copied.Type())
		})
	}
}

func TestWindowProjectPayloadOnlyOnProjectVariant(t *testing.T) {
	project, ok := NewProjectWindow(" alpha ").Project()
	require.True(t, ok)
	assert.Equal(t, "alpha", project)

	_, ok = NewMainWindow().Project()
	assert.False(t, ok)
}

func TestNewWindowSelectsVariant(t *testing.T) {
	w, err := NewWindow(WindowLogin, "")
	require.NoError(t, err)
	assert.Equal(t, NewLoginWindow(), w)

	w, err = NewWindow(WindowProjectID, "beta")
	require.NoError(t, err)
	assert.Equal(t, "projectId:beta", w.Key())
	assert.Equal(t, "/projectId/beta", w.Route())

	_, err = NewWindow(WindowProjectID, " ")
	require.Error(t, err)

	_, err = NewWindow(WindowType("tray"), "")
	require.ErrorIs(t, err, ErrUnknownWindow)
}

func TestWindowSingletonPolicy(t *testing.T) {
	for _, kind := range WindowTypes() {
		assert.Equal(t, kind != WindowProjectID, kind.Singleton(), kind)
		assert.NotZero(t, kind.DefaultBounds().Width, kind)
	}
}

func TestServiceDescriptorReportsTag(t *testing.T) {
	for _, kind := range []ServiceType{ServiceApp, ServiceUpdater, ServiceSVN, ServiceCompletion, ServiceBackend} {
		assert.True(t, kind.Valid())
		assert.Equal(t, kind, NewServiceDescriptor(kind).Type())
	}
	assert.False(t, ServiceType("tray").Valid())
}

func TestPageRoutes(t *testing.T) {
	page, err := ParsePage("svn")
	require.NoError(t, err)
	assert.Equal(t, "/main/svn", page.Route())

	_, err = ParsePage("about")
	require.Error(t, err)
}
