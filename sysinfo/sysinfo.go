// Package sysinfo reads current host memory usage for the stats page.
package sysinfo

import (
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot returns total and used physical memory in kilobytes.
// Each call re-queries the OS; nothing is cached between calls.
// A failed query degrades to (0, 0) rather than returning an error.
func Snapshot() (totalKB, usedKB uint64) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0
	}

	totalKB = vm.Total / 1024
	usedKB = vm.Used / 1024

	// Total and Used come from separate fields of one reading; clamp so
	// the pair always satisfies used <= total.
	if usedKB > totalKB {
		usedKB = totalKB
	}
	return totalKB, usedKB
}
