package domain

import "fmt"

type MainWindowPageType string

const (
	PageChat       MainWindowPageType = "chat"
	PageCompletion MainWindowPageType = "completion"
	PageHistory    MainWindowPageType = "history"
	PageSVN        MainWindowPageType = "svn"
)

func MainWindowPageTypes() []MainWindowPageType {
	return []MainWindowPageType{PageChat, PageCompletion, PageHistory, PageSVN}
}

func (p MainWindowPageType) Valid() bool {
	switch p {
	case PageChat, PageCompletion, PageHistory, PageSVN:
		return true
	default:
		return false
	}
}

func (p MainWindowPageType) String() string {
	return string(p)
}

func ParsePage(raw string) (MainWindowPageType, error) {
	page := MainWindowPageType(raw)
	if !page.Valid() {
		return "", fmt.Errorf("unsupported main window page %q", raw)
	}
	return page, nil
}

// Route returns the renderer route of the page inside the main window.
func (p MainWindowPageType) Route() string {
	return "/" + string(WindowMain) + "/" + string(p)
}
