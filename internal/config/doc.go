// Package config locates, creates and loads the slf configuration file.
//
// The file is a small TOML document with a single recognized key:
//
//	path = "~/notes/log.slf"
//
// It lives at ~/.config/slf/slf.toml, or under the platform config directory
// on Windows. The program writes it exactly once, via Init, and never touches
// it again; users may edit it by hand. A missing or broken file is never fatal
// outside of Init: callers fall back to Default.
package config
