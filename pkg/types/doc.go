// Package types defines the interfaces shared across readerlist packages.
package types
