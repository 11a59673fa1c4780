// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Projection returns the 4×4 perspective projection matrix
//
//	[ fov/ratio  0    0                    0                  ]
//	[ 0          fov  0                    0                  ]
//	[ 0          0    (far+near)/(near−far) 2·far·near/(near−far) ]
//	[ 0          0    −1                   0                  ]
//
// fov is the focal scale (the cotangent of half the vertical field of view),
// ratio the width/height aspect ratio, near and far the clip distances.
// Degenerate arguments (ratio = 0, near = far) produce non-finite entries;
// no validation is applied.
func Projection[K scalar.Scalar](fov, ratio, near, far K) *Matrix[K] {
	depth := near - far

	return &Matrix[K]{
		rows: []*vector.Vector[K]{
			vector.New(fov/ratio, 0, 0, 0),
			vector.New(0, fov, 0, 0),
			vector.New(0, 0, (far+near)/depth, (2*far*near)/depth),
			vector.New[K](0, 0, -1, 0),
		},
		cols: 4,
	}
}
