// Package simd provides the word kernels behind bitops.
//
// # Kernels
//
//   - OrWords, AndWords: three-operand combine, dst may alias a source
//   - PopcountWords: total set bits across words
//   - ZeroWords: clear a word range
//
// # Kernel families
//
// Both families compute identical results with math/bits; they differ in loop
// shape only. The unrolled family handles four words per iteration and is a
// preference, not a CPU requirement. Runtime CPU feature detection
// (golang.org/x/sys/cpu) picks it at init when the CPU has a population count
// instruction. Set BITOPS_KERNEL=generic or BITOPS_KERNEL=unrolled to
// override the choice; an unknown name is ignored.
package simd
