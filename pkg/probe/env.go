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

package probe

import (
	"os"
	"strconv"
)

// EnvProbes implements every probe interface the catalogue consults by
// reading BOOTCHECKD_PROBE_* environment variables, falling back to the
// unknown sentinel (or an empty string) for anything unset. It exists
// for cmd/bootcheckd's demo harness: the real process accessor and
// managed-runtime information source the spec treats as external
// collaborators are never part of this engine, so a standalone binary
// needs *some* concrete way to supply them without depending on a JVM.
type EnvProbes struct{}

func envInt(name string) int64 {
	v, ok := os.LookupEnv(name)
	if !ok {
		return UnknownInt
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return UnknownInt
	}
	return n
}

func envBool(name string) bool {
	v, _ := os.LookupEnv(name)
	b, _ := strconv.ParseBool(v)
	return b
}

// InitialHeapSize implements HeapProbe.
func (EnvProbes) InitialHeapSize() int64 { return envInt("BOOTCHECKD_PROBE_INITIAL_HEAP_SIZE") }

// MaxHeapSize implements HeapProbe.
func (EnvProbes) MaxHeapSize() int64 { return envInt("BOOTCHECKD_PROBE_MAX_HEAP_SIZE") }

// MaxFileDescriptorCount implements FileDescriptorProbe.
func (EnvProbes) MaxFileDescriptorCount() int64 { return envInt("BOOTCHECKD_PROBE_MAX_FILE_DESCRIPTORS") }

// IsMemoryLocked implements MemoryLockProbe.
func (EnvProbes) IsMemoryLocked() bool { return envBool("BOOTCHECKD_PROBE_MEMORY_LOCKED") }

// MaxThreads implements ThreadLimitProbe.
func (EnvProbes) MaxThreads() int64 { return envInt("BOOTCHECKD_PROBE_MAX_THREADS") }

// MaxAddressSpace implements AddressSpaceProbe. Unset or unparseable
// values return UnknownLong, this probe's unknown sentinel.
func (EnvProbes) MaxAddressSpace() int64 {
	n, err := strconv.ParseInt(os.Getenv("BOOTCHECKD_PROBE_MAX_ADDRESS_SPACE"), 10, 64)
	if err != nil {
		return UnknownLong
	}
	return n
}

// RlimitInfinity implements AddressSpaceProbe, delegating to a
// HostReader for the platform-correct sentinel.
func (EnvProbes) RlimitInfinity() int64 { return NewHostReader().RlimitInfinity() }

// Vendor implements RuntimeInfoProbe.
func (EnvProbes) Vendor() string { return os.Getenv("BOOTCHECKD_PROBE_RUNTIME_VENDOR") }

// VMName implements RuntimeInfoProbe.
func (EnvProbes) VMName() string { return os.Getenv("BOOTCHECKD_PROBE_VM_NAME") }

// Version implements RuntimeInfoProbe.
func (EnvProbes) Version() string { return os.Getenv("BOOTCHECKD_PROBE_RUNTIME_VERSION") }

// IsVersion8 implements RuntimeInfoProbe.
func (EnvProbes) IsVersion8() bool { return envBool("BOOTCHECKD_PROBE_IS_VERSION_8") }

// IsG1GCEnabled implements RuntimeInfoProbe.
func (EnvProbes) IsG1GCEnabled() bool { return envBool("BOOTCHECKD_PROBE_G1GC_ENABLED") }

// UseSerialGC implements RuntimeInfoProbe.
func (EnvProbes) UseSerialGC() string { return os.Getenv("BOOTCHECKD_PROBE_USE_SERIAL_GC") }

// IsSyscallFilterInstalled implements SyscallFilterProbe.
func (EnvProbes) IsSyscallFilterInstalled() bool {
	return envBool("BOOTCHECKD_PROBE_SYSCALL_FILTER_INSTALLED")
}

// OnError implements ForkDirectiveProbe.
func (EnvProbes) OnError() string { return os.Getenv("BOOTCHECKD_PROBE_ON_ERROR") }

// OnOutOfMemoryError implements ForkDirectiveProbe.
func (EnvProbes) OnOutOfMemoryError() string {
	return os.Getenv("BOOTCHECKD_PROBE_ON_OUT_OF_MEMORY_ERROR")
}
