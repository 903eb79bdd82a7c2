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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/bootcheck"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/probe"
)

// g1gcAffectedVersion matches exactly the Java 8 HotSpot version shape
// 25.<N>-b<build>, where N is the 8u<N> update release that the G1GC
// data-corruption bug is gated on. Any other shape (OpenJDK's
// different version scheme, Java 9+, etc.) never matches and is treated
// as non-violation.
var g1gcAffectedVersion = regexp.MustCompile(`^25\.(\d+)-b\d+$`)

// g1gcMinPatch is the minimum update release (the "40" in 8u40) that
// fixed the corruption bug.
const g1gcMinPatch = 40

// NewClientVMCheck builds the client-VM check: violated iff the probed
// VM name contains "Client VM".
func NewClientVMCheck(p probe.RuntimeInfoProbe) bootcheck.Check {
	violated := func() bool {
		return strings.Contains(p.VMName(), "Client VM")
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"JVM is using the client VM [%s] but should be using a server VM for the best performance",
			p.VMName(),
		)
	}
	return bootcheck.NewCheck("client-vm", violated, diagnostic, false)
}

// NewSerialGCCheck builds the serial-collector check: violated iff the
// probe reports the serial collector is in use.
func NewSerialGCCheck(p probe.RuntimeInfoProbe) bootcheck.Check {
	violated := func() bool {
		return p.UseSerialGC() == "true"
	}
	diagnostic := func() string {
		return "JVM is using the serial collector but should not be for the best performance; " +
			"either it's been explicitly set via -XX:+UseSerialGC or the VM is running with a single CPU"
	}
	return bootcheck.NewCheck("serial-gc", violated, diagnostic, false)
}

// NewSyscallFilterCheck builds the syscall-filter-install check:
// violated iff filters were requested but the probe reports they did
// not install.
func NewSyscallFilterCheck(p probe.SyscallFilterProbe, filterRequested bool) bootcheck.Check {
	violated := func() bool {
		return filterRequested && !p.IsSyscallFilterInstalled()
	}
	diagnostic := func() string {
		return "system call filters failed to install; check the logs and fix your configuration or disable system call filters at your own risk"
	}
	return bootcheck.NewCheck("syscall-filter-install", violated, diagnostic, false)
}

// NewOnErrorForkCheck builds the OnError variant of the MightForkCheck
// family: violated iff the syscall filter is installed and OnError is
// configured to a non-empty value. Always enforced: a sandbox that
// forbids forking must not silently let a fork-on-fatal-error directive
// slip through even in development mode.
func NewOnErrorForkCheck(filter probe.SyscallFilterProbe, fork probe.ForkDirectiveProbe) bootcheck.Check {
	violated := func() bool {
		return filter.IsSyscallFilterInstalled() && fork.OnError() != ""
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"OnError [%s] requires forking but is prevented by system call filters ([bootstrap.seccomp=true]); "+
				"upgrade to at least Java 8u92 and use ExitOnOutOfMemoryError",
			fork.OnError(),
		)
	}
	return bootcheck.NewCheck("on-error-might-fork", violated, diagnostic, true)
}

// NewOnOutOfMemoryErrorForkCheck builds the OnOutOfMemoryError variant
// of the MightForkCheck family. Same shape and enforcement as
// NewOnErrorForkCheck.
func NewOnOutOfMemoryErrorForkCheck(filter probe.SyscallFilterProbe, fork probe.ForkDirectiveProbe) bootcheck.Check {
	violated := func() bool {
		return filter.IsSyscallFilterInstalled() && fork.OnOutOfMemoryError() != ""
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"OnOutOfMemoryError [%s] requires forking but is prevented by system call filters ([bootstrap.seccomp=true]); "+
				"upgrade to at least Java 8u92 and use ExitOnOutOfMemoryError",
			fork.OnOutOfMemoryError(),
		)
	}
	return bootcheck.NewCheck("on-oom-might-fork", violated, diagnostic, true)
}

// NewG1GCVersionCheck builds the G1GC version gate: violated iff the
// vendor starts with "Oracle", G1GC is enabled, the runtime is Java 8,
// and the version string matches the affected 25.<u>-b<b> shape with
// u < g1gcMinPatch. Any other vendor, GC selection, runtime major
// version, or unparseable version string is non-violation.
func NewG1GCVersionCheck(p probe.RuntimeInfoProbe) bootcheck.Check {
	affected := func() bool {
		if !strings.HasPrefix(p.Vendor(), "Oracle") || !p.IsG1GCEnabled() || !p.IsVersion8() {
			return false
		}
		m := g1gcAffectedVersion.FindStringSubmatch(p.Version())
		if m == nil {
			return false
		}
		update, err := strconv.Atoi(m[1])
		if err != nil {
			return false
		}
		return update < g1gcMinPatch
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"JVM version [%s] can cause data corruption when used with G1GC; upgrade to at least Java 8u%d",
			p.Version(), g1gcMinPatch,
		)
	}
	return bootcheck.NewCheck("g1gc-version-gate", affected, diagnostic, false)
}
