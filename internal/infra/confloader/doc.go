// Package confloader provides configuration loading and file watching.
//
// The loader layers several koanf sources. Later sources override earlier
// ones:
//
//  1. Default values (a flat key map)
//  2. Configuration file (YAML, optional)
//  3. Environment variables (OTPOWNER_ prefix), after an optional dotenv file
//
// Command-line flags are applied on top by the caller with LoadMap.
//
// The Watcher reports writes to individual files. It watches the parent
// directory so editors that replace files by rename are still seen.
package confloader
