// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Pulsar catalog, snapshot cache, YAML config
// 0.2.0 - HYG star loader, asterisms, nearest-object query in the TUI
// 0.1.0 - Initial release: Sun, Moon and planet models, stereographic projection, headless report
