// Package buildinfo holds values stamped at link time with -ldflags "-X".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("fetchcontacts %s (commit=%s, date=%s)", Version, Commit, Date)
}
