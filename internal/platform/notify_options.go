// Package platform delivers desktop notifications through the host OS.
package platform

// AppName is the application name reported to notification daemons.
const AppName = "Paintbox"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file shown alongside the
	// notification where supported.
	IconPath string
}
