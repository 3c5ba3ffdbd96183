// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build !linux

package affinity

// Pin is a no-op on platforms without an affinity implementation.
func Pin(worker int) error { return nil }

// Unpin is a no-op on platforms without an affinity implementation.
func Unpin() {}
