// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from the following sources; for every field the
// first source that sets a non-zero value wins:
//  1. Environment variables
//  2. JSON config file (path from the CONFIG variable)
//  3. Built-in defaults ([Defaults])
//
// With no environment and no file the server listens on [DefaultHTTPAddress]
// and loads the seed data.
//
// The main entry point is [GetStructuredConfig].
package config
