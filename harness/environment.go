// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Environment describes the machine a benchmark ran on.
type Environment struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	Features   []string // detected SIMD extensions, may be empty
}

// DetectEnvironment snapshots the current runtime and CPU features.
func DetectEnvironment() Environment {
	return Environment{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   simdFeatures(),
	}
}

func simdFeatures() []string {
	var fs []string
	add := func(ok bool, name string) {
		if ok {
			fs = append(fs, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasSVE, "sve")
	}

	return fs
}

// String renders e on one line, e.g.
// "linux/amd64 cpus=8 gomaxprocs=8 simd=[avx avx2 fma]".
func (e Environment) String() string {
	return fmt.Sprintf("%s/%s cpus=%d gomaxprocs=%d simd=[%s]",
		e.GOOS, e.GOARCH, e.NumCPU, e.GOMAXPROCS, strings.Join(e.Features, " "))
}
