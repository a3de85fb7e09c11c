// Package api handles incoming HTTP requests for users and posts: request
// decoding and validation, path parameter parsing, and response formatting.
// Handlers delegate to the service layer and report every failure through
// HandleAPIError, which owns the mapping from domain errors to HTTP responses.
package api
