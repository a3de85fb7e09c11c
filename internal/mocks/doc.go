// Package mocks provides testify mock implementations of the store and service
// interfaces for unit tests in other packages.
package mocks
