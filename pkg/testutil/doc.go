// Package testutil provides helpers for testing readerlist components.
//
// Tests should prefer the in-memory filesystem returned by NewTestFS and keep
// their fixture configs inline.
package testutil
