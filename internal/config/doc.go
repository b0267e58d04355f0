// Package config provides configuration loading, merging, and validation
// for the trip-keeper server.
//
// Configuration is assembled from several sources; for every field the
// first source that sets a non-zero value wins:
//  1. Environment variables (a .env file in the working directory is loaded first)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
