// Package testsupport holds demand fixtures and small helpers shared by the
// package tests.
package testsupport
