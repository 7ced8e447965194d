// Package testsupport holds clocks, databases and golden-file helpers shared
// by the package tests. Helpers fail the test instead of returning errors to
// keep call sites short.
package testsupport
