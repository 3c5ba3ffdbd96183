// Package vecmath
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Small-vector, matrix, and complex arithmetic used by the image packages.
// Scalar operations are plain sequential code; the batch helpers push large
// arrays through the parallel range engine.
package vecmath
