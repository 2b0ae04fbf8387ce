// Package config loads the lookup tables that describe a release of the
// game data: which asset class each catalog type code stands for, and which
// palette, script and polygon buffers each game part uses.
//
// Defaults are embedded and match the original release. A TOML file may
// replace any section; the result is normalized and validated before it is
// converted into resource tables.
package config
