package domain

import (
	"fmt"
	"net/url"
	"strings"
)

type WindowType string

const (
	WindowMain      WindowType = "main"
	WindowLogin     WindowType = "login"
	WindowSetting   WindowType = "setting"
	WindowProjectID WindowType = "projectId"
)

var windowTypes = []WindowType{WindowMain, WindowLogin, WindowSetting, WindowProjectID}

// WindowTypes lists every window kind in declaration order.
func WindowTypes() []WindowType {
	return append([]WindowType(nil), windowTypes...)
}

func (t WindowType) Valid() bool {
	switch t {
	case WindowMain, WindowLogin, WindowSetting, WindowProjectID:
		return true
	default:
		return false
	}
}

func (t WindowType) String() string {
	return string(t)
}

// Singleton reports whether at most one window of this kind may be open.
func (t WindowType) Singleton() bool {
	return t != WindowProjectID
}

type Bounds struct {
	Width  int
	Height int
}

func (t WindowType) DefaultBounds() Bounds {
	switch t {
	case WindowMain:
		return Bounds{Width: 1080, Height: 720}
	case WindowLogin:
		return Bounds{Width: 420, Height: 560}
	case WindowSetting:
		return Bounds{Width: 760, Height: 560}
	case WindowProjectID:
		return Bounds{Width: 960, Height: 680}
	default:
		return Bounds{}
	}
}

// Window describes one concrete window kind. The tag is fixed at construction;
// project is only carried by the projectId variant.
type Window struct {
	kind    WindowType
	project string
}

func NewMainWindow() Window {
	return Window{kind: WindowMain}
}

func NewLoginWindow() Window {
	return Window{kind: WindowLogin}
}

func NewSettingWindow() Window {
	return Window{kind: WindowSetting}
}

func NewProjectWindow(project string) Window {
	return Window{kind: WindowProjectID, project: strings.TrimSpace(project)}
}

// NewWindow selects the variant for a requested tag.
func NewWindow(kind WindowType, project string) (Window, error) {
	switch kind {
	case WindowMain:
		return NewMainWindow(), nil
	case WindowLogin:
		return NewLoginWindow(), nil
	case WindowSetting:
		return NewSettingWindow(), nil
	case WindowProjectID:
		if strings.TrimSpace(project) == "" {
			return Window{}, fmt.Errorf("project is required for %s window", kind)
		}
		return NewProjectWindow(project), nil
	default:
		return Window{}, fmt.Errorf("%w: %q", ErrUnknownWindow, kind)
	}
}

func (w Window) Type() WindowType {
	return w.kind
}

func (w Window) Project() (string, bool) {
	if w.kind != WindowProjectID {
		return "", false
	}
	return w.project, true
}

// Key identifies the slot a window occupies in the window manager.
func (w Window) Key() string {
	if project, ok := w.Project(); ok {
		return string(w.kind) + ":" + project
	}
	return string(w.kind)
}

func (w Window) Route() string {
	if project, ok := w.Project(); ok {
		return "/" + string(w.kind) + "/" + url.PathEscape(project)
	}
	return "/" + string(w.kind)
}

func (w Window) Title() string {
	switch w.kind {
	case WindowMain:
		return "Assistant"
	case WindowLogin:
		return "Sign in"
	case WindowSetting:
		return "Settings"
	case WindowProjectID:
		return "Project " + w.project
	default:
		return string(w.kind)
	}
}
