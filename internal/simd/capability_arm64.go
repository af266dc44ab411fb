//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// CNT is part of ASIMD.
	hasPOPCNT = cpu.ARM64.HasASIMD
	initCapabilities()
}
