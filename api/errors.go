// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values shared across the parfor library.

package api

import "fmt"

var (
	ErrExecutorClosed  = fmt.Errorf("executor is closed")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
