/*
Copyright 2018 Heptio Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package catalogue assembles the concrete bootstrap checks: the
// resource-limit family (heap, file descriptors, memory lock, threads,
// address space, kernel map count), the managed-runtime family (client
// VM, serial GC, G1GC version gate, syscall filter, fork-risk), and the
// runtime-version-floor check this repo supplements the distilled check
// set with. Every constructor returns a bootcheck.Check built from the
// probes in pkg/probe; none hold any state beyond the closures they
// capture at construction.
package catalogue

import (
	"fmt"

	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/bootcheck"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/probe"
)

// StandardFileDescriptorFloor is the default non-macOS file descriptor
// floor NewFileDescriptorCheckForHost selects for its "standard" flavor.
const StandardFileDescriptorFloor = 65536

// OSXFileDescriptorFloor is the lower floor macOS hosts are held to.
const OSXFileDescriptorFloor = 10240

// MinThreads is the fixed floor the thread-limit check enforces.
const MinThreads = 2048

// MinMapCount is the fixed floor the kernel vm.max_map_count check
// enforces.
const MinMapCount = 262144

// NewHeapSizeCheck builds the heap-size-equality check: violated iff
// both InitialHeapSize and MaxHeapSize are strictly positive and
// unequal. A probe reporting 0 for either value means "not configured"
// and is skipped, not violated.
func NewHeapSizeCheck(p probe.HeapProbe) bootcheck.Check {
	violated := func() bool {
		initial, max := p.InitialHeapSize(), p.MaxHeapSize()
		return initial > 0 && max > 0 && initial != max
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"initial heap size [%d] not equal to maximum heap size [%d]; these values must be set to the same value",
			p.InitialHeapSize(), p.MaxHeapSize(),
		)
	}
	return bootcheck.NewCheck("heap-size-equality", violated, diagnostic, false)
}

// NewFileDescriptorCheck builds the file-descriptor-floor check against
// an explicit limit. limit must be positive; a non-positive limit is a
// configuration error raised synchronously, never aggregated.
func NewFileDescriptorCheck(p probe.FileDescriptorProbe, limit int64) (bootcheck.Check, error) {
	if limit <= 0 {
		return nil, bootcheck.NewConfigError("limit must be positive but was [%d]", limit)
	}
	violated := func() bool {
		v := p.MaxFileDescriptorCount()
		return v >= 0 && v < limit
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"max file descriptors [%d] for elasticsearch process is too low, increase to at least [%d]",
			p.MaxFileDescriptorCount(), limit,
		)
	}
	return bootcheck.NewCheck("max-file-descriptors", violated, diagnostic, false), nil
}

// NewFileDescriptorCheckForHost selects the standard or OSX floor based
// on goos and delegates to NewFileDescriptorCheck.
func NewFileDescriptorCheckForHost(p probe.FileDescriptorProbe, goos string) (bootcheck.Check, error) {
	limit := int64(StandardFileDescriptorFloor)
	if goos == "darwin" {
		limit = OSXFileDescriptorFloor
	}
	return NewFileDescriptorCheck(p, limit)
}

// NewMemoryLockCheck builds the memory-lock check: violated iff
// mlockall was requested but the probe reports memory is not locked.
func NewMemoryLockCheck(p probe.MemoryLockProbe, mlockallRequested bool) bootcheck.Check {
	violated := func() bool {
		return mlockallRequested && !p.IsMemoryLocked()
	}
	diagnostic := func() string {
		return "memory locking requested for elasticsearch process but memory is not locked"
	}
	return bootcheck.NewCheck("memory-lock", violated, diagnostic, false)
}

// NewMaxThreadsCheck builds the max-number-of-threads check against the
// fixed MinThreads floor.
func NewMaxThreadsCheck(p probe.ThreadLimitProbe) bootcheck.Check {
	violated := func() bool {
		v := p.MaxThreads()
		return v >= 0 && v < MinThreads
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"max number of threads [%d] for user is too low, increase to at least [%d]",
			p.MaxThreads(), MinThreads,
		)
	}
	return bootcheck.NewCheck("max-threads", violated, diagnostic, false)
}

// NewMaxAddressSpaceCheck builds the max-address-space-size check:
// violated iff the probed ceiling is neither the host's "unlimited"
// sentinel nor the probe's own unknown sentinel.
func NewMaxAddressSpaceCheck(p probe.AddressSpaceProbe) bootcheck.Check {
	violated := func() bool {
		v := p.MaxAddressSpace()
		return v != p.RlimitInfinity() && v != probe.UnknownLong
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"max size virtual memory [%d] for user is too low, increase to [unlimited]",
			p.MaxAddressSpace(),
		)
	}
	return bootcheck.NewCheck("max-address-space", violated, diagnostic, false)
}

// NewMaxMapCountCheck builds the kernel vm.max_map_count check against
// the fixed MinMapCount floor.
func NewMaxMapCountCheck(p probe.MapCountProbe) bootcheck.Check {
	violated := func() bool {
		v := p.MaxMapCount()
		return v >= 0 && v < MinMapCount
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"max virtual memory areas vm.max_map_count [%d] is too low, increase to at least [%d]",
			p.MaxMapCount(), MinMapCount,
		)
	}
	return bootcheck.NewCheck("max-map-count", violated, diagnostic, false)
}
