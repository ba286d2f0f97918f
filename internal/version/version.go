// Package version provides build version information for mlxhub.
package version

// Version is the application version, set via ldflags at build time.
var Version = "dev"

// UserAgent returns the User-Agent string for hub HTTP requests.
func UserAgent() string {
	return "mlxhub/" + Version
}
