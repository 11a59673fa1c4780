// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"runtime"

	"golang.org/x/sys/cpu"
)

// fmaEnabled is decided once at package init from the host CPU features.
var fmaEnabled = detectFMA()

// detectFMA reports whether math.FMA lowers to a single hardware instruction.
// Without hardware support math.FMA falls back to a slow software emulation,
// so accumulation then uses a plain multiply followed by an add.
func detectFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasFMA
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64":
		return true // fused multiply-add is part of the base ISA
	default:
		return false
	}
}

// FMAEnabled reports whether LinearCombination accumulates with fused multiply-add.
func FMAEnabled() bool { return fmaEnabled }

// mulAdd returns x*y + z, fused when the hardware supports it.
func mulAdd(x, y, z float64, fused bool) float64 {
	if fused {
		return math.FMA(x, y, z)
	}

	return x*y + z
}
