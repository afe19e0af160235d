// Package memory provides in-memory implementations of driven ports.
// They back the service and CLI tests and never touch the filesystem.
package memory
