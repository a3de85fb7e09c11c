// Package service contains the application use cases for users and posts.
// It orchestrates interactions between domain objects and the repositories
// defined in internal/store.
//
// Services normalize and validate input, apply business rules such as email
// uniqueness, and translate absent records into domain NotFound errors. They
// return *domain.Error values so the API layer can map every failure to an
// HTTP response without inspecting infrastructure details.
//
// The service layer depends on domain entities and repository interfaces,
// never on specific infrastructure implementations.
package service
