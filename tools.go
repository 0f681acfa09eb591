//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through `go generate ./contract/...` to refresh mocks/.
// Importing it here keeps go.mod and go.sum in sync with that tool.
package chat_term

import (
	_ "go.uber.org/mock/mockgen"
)
