// Package ports defines the outbound contracts of the application core:
// order persistence, catalog lookups, and the user directory. Adapters under
// internal/adapters/out provide the concrete implementations.
package ports
