//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: regenerate *_mock_test.go via go generate ./...
// - github.com/pressly/goose/v3/cmd/goose: declared in the go.mod tool block
