// Package config provides configuration loading, merging, and validation
// facilities for the portal server.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (comments allowed)
//
// Fields no source sets receive the Default* values. The main entry point
// is [GetStructuredConfig].
package config
