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

package catalogue

import (
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/bootcheck"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/probe"
)

// Probes bundles every probe interface the catalogue consults. A single
// embedding harness type typically implements all of these (reading
// some from the OS via pkg/probe.HostReader, the rest from whatever
// process accessor and managed-runtime information source it owns); the
// catalogue only ever depends on the narrow interfaces, never the
// concrete type.
type Probes struct {
	Heap           probe.HeapProbe
	FileDescriptor probe.FileDescriptorProbe
	MemoryLock     probe.MemoryLockProbe
	Threads        probe.ThreadLimitProbe
	AddressSpace   probe.AddressSpaceProbe
	MapCount       probe.MapCountProbe
	Runtime        probe.RuntimeInfoProbe
	SyscallFilter  probe.SyscallFilterProbe
	ForkDirective  probe.ForkDirectiveProbe
}

// Limits carries every operator-configurable parameter the catalogue
// needs beyond the probes themselves.
type Limits struct {
	// FileDescriptorLimit overrides the standard/OSX floor when nonzero
	// (including negative, which NewFileDescriptorCheck rejects as a
	// configuration error). Zero selects NewFileDescriptorCheckForHost's
	// platform default.
	FileDescriptorLimit int64
	// GOOS selects the file-descriptor floor flavor when
	// FileDescriptorLimit is zero. The rlimit infinity sentinel is not
	// taken from GOOS; it comes from the AddressSpaceProbe.
	GOOS string
	// MlockallRequested mirrors whether the embedding harness asked for
	// locked memory.
	MlockallRequested bool
	// SyscallFilterRequested mirrors whether the embedding harness asked
	// for a syscall sandbox.
	SyscallFilterRequested bool
	// MinimumRuntimeVersion is the floor for the supplemental
	// runtime-version check; empty disables that check entirely.
	MinimumRuntimeVersion string
}

// Build assembles the full, statically-ordered check list: the twelve
// checks from the distilled specification (eleven catalogue entries, the
// fork-risk family contributing two), in the order they're documented,
// followed by the supplemental runtime-version-floor check
// when Limits.MinimumRuntimeVersion is set. There is no plugin or
// discovery mechanism; callers that want a different set construct
// their own slice directly from the New*Check constructors.
func Build(p Probes, limits Limits) ([]bootcheck.Check, error) {
	fdCheck, err := buildFileDescriptorCheck(p, limits)
	if err != nil {
		return nil, err
	}

	checks := []bootcheck.Check{
		NewHeapSizeCheck(p.Heap),
		fdCheck,
		NewMemoryLockCheck(p.MemoryLock, limits.MlockallRequested),
		NewMaxThreadsCheck(p.Threads),
		NewMaxAddressSpaceCheck(p.AddressSpace),
		NewMaxMapCountCheck(p.MapCount),
		NewClientVMCheck(p.Runtime),
		NewSerialGCCheck(p.Runtime),
		NewSyscallFilterCheck(p.SyscallFilter, limits.SyscallFilterRequested),
		NewOnErrorForkCheck(p.SyscallFilter, p.ForkDirective),
		NewOnOutOfMemoryErrorForkCheck(p.SyscallFilter, p.ForkDirective),
		NewG1GCVersionCheck(p.Runtime),
	}

	if limits.MinimumRuntimeVersion != "" {
		versionCheck, err := NewRuntimeVersionFloorCheck(p.Runtime, limits.MinimumRuntimeVersion)
		if err != nil {
			return nil, err
		}
		checks = append(checks, versionCheck)
	}

	return checks, nil
}

func buildFileDescriptorCheck(p Probes, limits Limits) (bootcheck.Check, error) {
	if limits.FileDescriptorLimit != 0 {
		return NewFileDescriptorCheck(p.FileDescriptor, limits.FileDescriptorLimit)
	}
	return NewFileDescriptorCheckForHost(p.FileDescriptor, limits.GOOS)
}
