// Package livesync pushes registration and data-generation results to a
// running engine dev server over socket.io, so a development session can
// hot-reload content without restarting.
//
// The client is optional everywhere: the CLI only constructs one when a
// dev-server URL is configured, and publish failures never affect the
// registration or generation passes themselves.
package livesync
