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

// Package probe declares the nullary accessors the bootstrap engine
// consults, and the sentinels that mean "the OS could not report this
// value". Every probe implementation must return a sentinel rather than
// erroring; checks in pkg/bootcheck/catalogue treat a sentinel as "cannot
// determine, therefore not a violation".
package probe

// UnknownInt is the sentinel numeric probes return when the host cannot
// report a value. Negative by convention so callers can use `< 0` as the
// unknown test without a second return value.
const UnknownInt int64 = -1

// UnknownLong is the sentinel used by probes whose native "unlimited"
// value already occupies every non-negative int64 distinction (max
// address space). Mirrors Java's Long.MIN_VALUE from the source system.
const UnknownLong int64 = -1 << 63

// RlimitInfinity reports the host's sentinel for "this rlimit is
// unlimited". Darwin uses math.MaxInt64; every other supported platform
// uses -1.
type RlimitInfinity interface {
	RlimitInfinity() int64
}

// HeapProbe reports the managed runtime's configured heap sizes, in bytes.
// A return of 0 means "not configured" and is never a violation.
type HeapProbe interface {
	InitialHeapSize() int64
	MaxHeapSize() int64
}

// FileDescriptorProbe reports the process's file descriptor ceiling.
type FileDescriptorProbe interface {
	MaxFileDescriptorCount() int64
}

// MemoryLockProbe reports whether the process's memory is actually
// locked (mlockall succeeded), independent of whether it was requested.
type MemoryLockProbe interface {
	IsMemoryLocked() bool
}

// ThreadLimitProbe reports the process's thread ceiling.
type ThreadLimitProbe interface {
	MaxThreads() int64
}

// AddressSpaceProbe reports the process's virtual address space ceiling
// together with the host's "unlimited" sentinel for that quantity.
type AddressSpaceProbe interface {
	MaxAddressSpace() int64
	RlimitInfinity() int64
}

// MapCountProbe reports the kernel's vm.max_map_count tunable.
type MapCountProbe interface {
	MaxMapCount() int64
}

// RuntimeInfoProbe reports identifying information about the managed
// runtime hosting the process: vendor string, VM name, a parseable
// version string, and GC selection flags.
type RuntimeInfoProbe interface {
	Vendor() string
	VMName() string
	Version() string
	IsVersion8() bool
	IsG1GCEnabled() bool
	UseSerialGC() string
}

// SyscallFilterProbe reports whether the sandbox's syscall filter
// installed successfully.
type SyscallFilterProbe interface {
	IsSyscallFilterInstalled() bool
}

// ForkDirectiveProbe reports the runtime's configured on-fatal-error
// directives, used by the MightForkCheck family. An empty string means
// "not configured".
type ForkDirectiveProbe interface {
	OnError() string
	OnOutOfMemoryError() string
}
