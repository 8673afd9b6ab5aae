// Package config loads the pager configuration.
//
// Values come from three layers, later layers winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension
//  3. AUTOSCROLL_* environment variables, e.g. AUTOSCROLL_SCROLL_DEAD_BAND
//
// The result is validated before it is handed out. A Manager keeps the
// current configuration and can watch the file, reloading it and
// notifying subscribers on every change. Invalid edits are reported and
// the previous configuration stays in effect.
package config
