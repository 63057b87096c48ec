package speech

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Device identifies the compute device a backend runs on.
type Device string

const (
	DeviceCPU  Device = "cpu"
	DeviceCUDA Device = "cuda"
	DeviceMPS  Device = "mps"
)

// Probe reports which accelerators the host offers.
type Probe struct {
	CUDA  bool
	Metal bool
}

// Selection is the resolved compute configuration for a run. Warning is
// non-empty when a requested accelerator was unavailable and the run fell
// back to the CPU.
type Selection struct {
	Device        Device
	HalfPrecision bool
	BatchSize     int
	Threads       int
	Warning       string
}

// Fixed batch sizes; larger batches only pay off with an accelerator.
const (
	batchSizeAccel = 16
	batchSizeCPU   = 4
)

// DetectProbe inspects the host for accelerator support.
func DetectProbe() Probe {
	return Probe{
		CUDA:  detectCUDA(),
		Metal: runtime.GOOS == "darwin" && runtime.GOARCH == "arm64",
	}
}

func detectCUDA() bool {
	if _, err := os.Stat("/proc/driver/nvidia/version"); err == nil {
		return true
	}
	_, err := exec.LookPath("nvidia-smi")
	return err == nil
}

// Resolve maps a device request and a probe result to a Selection.
// An empty request picks the first available of cuda, mps, cpu. An explicit
// request for an unavailable accelerator falls back to the CPU with a
// warning instead of failing. Device suffixes such as "cuda:1" are accepted
// for all three device families.
func Resolve(requested string, probe Probe) Selection {
	name := normalizeDevice(requested)

	switch name {
	case "":
		switch {
		case probe.CUDA:
			return accelSelection(DeviceCUDA)
		case probe.Metal:
			return accelSelection(DeviceMPS)
		default:
			return cpuSelection("")
		}
	case string(DeviceCUDA):
		if probe.CUDA {
			return accelSelection(DeviceCUDA)
		}
		return cpuSelection("cuda device requested but not available, falling back to cpu")
	case string(DeviceMPS):
		if probe.Metal {
			return accelSelection(DeviceMPS)
		}
		return cpuSelection("mps device requested but not available, falling back to cpu")
	case string(DeviceCPU):
		return cpuSelection("")
	default:
		return cpuSelection("unknown device " + strings.TrimSpace(requested) + ", falling back to cpu")
	}
}

func normalizeDevice(requested string) string {
	name := strings.ToLower(strings.TrimSpace(requested))
	if idx := strings.IndexByte(name, ':'); idx >= 0 {
		name = name[:idx]
	}
	return name
}

func accelSelection(d Device) Selection {
	threads := runtime.NumCPU() / 2
	if threads < 1 {
		threads = 1
	}
	return Selection{
		Device:        d,
		HalfPrecision: true,
		BatchSize:     batchSizeAccel,
		Threads:       threads,
	}
}

func cpuSelection(warning string) Selection {
	return Selection{
		Device:    DeviceCPU,
		BatchSize: batchSizeCPU,
		Threads:   runtime.NumCPU(),
		Warning:   warning,
	}
}
