package system

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Failed to read open file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Failed to raise open file limit: %v", err)
	} else {
		fmt.Printf("[*] Open file limit raised to %d\n", rLimit.Cur)
	}
}

// Workers picks a frame worker count: one per logical core, capped so that
// in-flight frame buffers stay within half the available memory. Each worker
// holds roughly two RGBA buffers: the one being drawn and the one queued for
// the encoder.
func Workers(width, height int) int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		n = runtime.NumCPU()
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return n
	}

	frameBytes := uint64(width) * uint64(height) * 4 * 2
	if frameBytes == 0 {
		return n
	}
	if maxByMem := int((vm.Available / 2) / frameBytes); maxByMem < n {
		n = maxByMem
	}
	if n < 1 {
		n = 1
	}
	return n
}

// GetBestH264Encoder probes ffmpeg for a hardware H.264 encoder, falling
// back to software libx264.
func GetBestH264Encoder() string {
	candidates := []string{"h264_videotoolbox", "h264_nvenc"}

	cmd := exec.Command("ffmpeg", "-encoders")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "libx264"
	}
	for _, name := range candidates {
		if strings.Contains(string(out), name) {
			return name
		}
	}
	return "libx264"
}
