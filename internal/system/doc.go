// Package system answers the host questions diagnostics needs: which
// platform this is, which kernel or OS release it runs, which Go runtime
// built the binary, and whether a stream is attached to a terminal.
//
// Values are read on every call and never cached.
package system
