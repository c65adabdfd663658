//go:build tools
// +build tools

// Package tools documents development tool dependencies.
// These tools are run via `go run` or installed globally and are not part of
// the runtime binary.
package tools

// Development tools:
//
// mockgen - generates gomock mocks for the internal/core interfaces
//   Run: go generate ./internal/mocks
//   Module: go.uber.org/mock (pinned in go.mod)
//
// Air - Live reload for Go apps
//   Install: go install github.com/air-verse/air@v1.63.0
