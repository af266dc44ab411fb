package simd

import (
	"fmt"
	"math/bits"
	"os"
	"runtime"
	"testing"
)

// TestMain prints kernel diagnostics so CI logs show which family ran.
func TestMain(m *testing.M) {
	fmt.Printf("=== bitops kernel diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s word=%d bits\n", runtime.GOOS, runtime.GOARCH, bits.UintSize)
	fmt.Printf("%s=%q\n", EnvKernel, os.Getenv(EnvKernel))
	fmt.Printf("Active kernel: %s\n", ActiveKernel())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("POPCNT: %v\n", HasPOPCNT())
	fmt.Printf("=================================\n\n")

	os.Exit(m.Run())
}
