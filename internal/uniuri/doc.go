// Package uniuri generates cryptographically secure random strings.
// The services use it for development signing secrets and seeded passwords.
package uniuri
