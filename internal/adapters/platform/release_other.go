//go:build !unix

package platform

func osRelease() string {
	return ""
}
