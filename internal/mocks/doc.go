// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized mock implementations can be reused across test packages.
// Each mock exposes function fields to override individual methods plus
// default values used when no override is set.
package mocks
