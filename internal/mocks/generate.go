// Package mocks provides mock implementations for testing the repositories.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository interfaces in internal/core. Hand-written doubles for the
// auth ports live in the auth subpackage.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=allowlist_repository_mock.go github.com/greenplate/admin-api/internal/core AllowlistRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=stall_repository_mock.go github.com/greenplate/admin-api/internal/core StallRepository
