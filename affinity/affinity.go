// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Optional CPU pinning for executor workers. Pinning is best effort: on
// platforms without an implementation, or when the syscall fails, workers
// simply run unpinned. Disabled by default; enabled via control.Config.

// Package affinity pins worker goroutines to CPUs where the platform
// supports it.
package affinity
