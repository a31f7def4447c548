// Package version carries build metadata set through -ldflags.
package version

var (
	Version = "dev"
	Commit  = "none"
)

func String() string {
	if Commit == "" || Commit == "none" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
