// Package memory provides in-memory implementations of the store interfaces.
// They back the "memory" database driver used for local development and the
// end-to-end API tests, and follow the same contract as the PostgreSQL stores:
// absent records are reported as nil with a nil error, listings are ordered by
// id and never nil, and user emails are unique.
package memory
