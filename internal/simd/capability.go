package simd

import (
	"os"
	"strings"
)

// EnvKernel is the environment variable that overrides kernel auto-selection.
const EnvKernel = "BITOPS_KERNEL"

// Kernel identifies a family of word-loop implementations.
type Kernel uint8

const (
	// Generic processes one word per iteration.
	Generic Kernel = iota
	// Unrolled processes four words per iteration. Both families count
	// bits with math/bits, so the difference is loop shape only.
	Unrolled
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case Unrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "unrolled":
		return Unrolled, true
	default:
		return Generic, false
	}
}

// Package-level state, written once from init.
var (
	activeKernel Kernel

	// hasOverride is true if BITOPS_KERNEL selected the kernel.
	hasOverride bool

	// hasPOPCNT is set by platform-specific init.
	hasPOPCNT bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvKernel); override != "" {
		if k, ok := ParseKernel(override); ok && isKernelAvailable(k) {
			hasOverride = true
			useKernel(k)
			return
		}
		// Unknown or unavailable override: fall through to auto-detection.
	}

	useKernel(selectBestKernel())
}

func isKernelAvailable(k Kernel) bool {
	switch k {
	case Generic:
		return true
	case Unrolled:
		return true
	default:
		return false
	}
}

// selectBestKernel prefers the unrolled loop shape on CPUs with a population
// count instruction, where the per-word count is cheap enough for loop
// overhead to dominate. Without it the count dominates and unrolling buys
// nothing, so the smaller generic loop is kept.
func selectBestKernel() Kernel {
	if hasPOPCNT {
		return Unrolled
	}
	return Generic
}

// ActiveKernel returns the currently active kernel family.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if BITOPS_KERNEL was honored.
func IsOverridden() bool {
	return hasOverride
}

// HasPOPCNT returns true if the CPU counts bits in hardware.
func HasPOPCNT() bool {
	return hasPOPCNT
}
