// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer and object reuse for scratch-heavy callers of the engine, such as
// the TGA decoder's per-row buffers. See bytepool.go and objpool.go.
package pool
