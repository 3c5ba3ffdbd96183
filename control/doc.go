// Package control
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Immutable startup configuration for the parfor library plus debug probes
// and an invocation tracer. Configuration is applied once before the ambient
// pool is first used; later changes are rejected rather than propagated, so
// the worker ceiling stays a fixed process-wide value.
package control
