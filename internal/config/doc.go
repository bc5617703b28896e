// Package config provides editor configuration.
//
// Settings are layered, with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by cmd)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← PIECEWISE_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← TOML or YAML
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The loader sub-package reads each source into a map; Load merges the maps
// and decodes known settings into a Config. Watch re-runs Load whenever the
// config file changes on disk.
package config
