// Package utils provides general-purpose helper utilities used across
// different parts of the application: JSON response writing, the resty-based
// HTTP client, and identifier generation.
package utils
