// Package utils provides general-purpose helper utilities used across
// different parts of the client: HTTP client initialization, access token
// parsing and device identifier generation.
package utils
