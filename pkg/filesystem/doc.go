// Package filesystem provides filesystem implementations for readerlist.
//
// This package contains implementations of the types.FS interface,
// backed by the OS or by an afero filesystem for tests.
package filesystem
