package ports

// Platform reports facts about the host operating system.
type Platform interface {
	Release() string
}
