// Package platform reports CPU features that matter for float32 kernels.
package platform

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the host CPU.
type Features struct {
	GOOS   string
	GOARCH string

	// x86-64
	HasFMA    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM64
	HasASIMD bool
	HasSVE2  bool
}

// Detect returns the features of the running CPU.
func Detect() Features {
	f := Features{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
	}

	switch runtime.GOARCH {
	case "amd64":
		f.HasFMA = cpu.X86.HasFMA
		f.HasAVX2 = cpu.X86.HasAVX2
		f.HasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	case "arm64":
		f.HasASIMD = cpu.ARM64.HasASIMD
		f.HasSVE2 = cpu.ARM64.HasSVE2
		// FMADD is part of the base ARMv8 ISA.
		f.HasFMA = true
	}

	return f
}

// FusedMultiplyAdd reports whether the Go compiler may contract float
// expressions into fused multiply-adds on this platform.
//
// The gc compiler fuses on arm64, ppc64, ppc64le, riscv64 and s390x, and on
// amd64 only with GOAMD64=v3 or higher.
func (f Features) FusedMultiplyAdd() bool {
	switch f.GOARCH {
	case "arm64", "ppc64", "ppc64le", "riscv64", "s390x":
		return true
	case "amd64":
		return f.HasFMA && amd64Level >= 3
	default:
		return false
	}
}

// String returns a multi-line, human-readable report.
func (f Features) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "GOOS=%s GOARCH=%s\n", f.GOOS, f.GOARCH)

	switch f.GOARCH {
	case "amd64":
		fmt.Fprintf(&b, "  FMA: %v\n", f.HasFMA)
		fmt.Fprintf(&b, "  AVX2: %v\n", f.HasAVX2)
		fmt.Fprintf(&b, "  AVX-512 (F+BW): %v\n", f.HasAVX512)
	case "arm64":
		fmt.Fprintf(&b, "  ASIMD (NEON): %v\n", f.HasASIMD)
		fmt.Fprintf(&b, "  SVE2: %v\n", f.HasSVE2)
	}

	fmt.Fprintf(&b, "  Compiler FMA contraction: %v\n", f.FusedMultiplyAdd())

	return b.String()
}
