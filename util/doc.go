// Package util provides generic utility functions for dagkit applications.
//
// It includes slice operations, pointer helpers, map utilities, and string
// sanitization.
package util
