/*
Copyright the Sonobuoy contributors 2019

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

import "testing"

func TestEnvProbesUnsetIsUnknown(t *testing.T) {
	p := EnvProbes{}
	if got := p.InitialHeapSize(); got != UnknownInt {
		t.Errorf("InitialHeapSize() = %d, expected unknown sentinel", got)
	}
	if got := p.MaxFileDescriptorCount(); got != UnknownInt {
		t.Errorf("MaxFileDescriptorCount() = %d, expected unknown sentinel", got)
	}
	if p.IsMemoryLocked() {
		t.Error("IsMemoryLocked() should default false")
	}
	if p.Vendor() != "" {
		t.Error("Vendor() should default empty")
	}
}

func TestEnvProbesReadConfiguredValues(t *testing.T) {
	t.Setenv("BOOTCHECKD_PROBE_INITIAL_HEAP_SIZE", "512")
	t.Setenv("BOOTCHECKD_PROBE_MAX_HEAP_SIZE", "512")
	t.Setenv("BOOTCHECKD_PROBE_RUNTIME_VENDOR", "Oracle Corporation")
	t.Setenv("BOOTCHECKD_PROBE_G1GC_ENABLED", "true")

	p := EnvProbes{}
	if got := p.InitialHeapSize(); got != 512 {
		t.Errorf("InitialHeapSize() = %d, expected 512", got)
	}
	if got := p.MaxHeapSize(); got != 512 {
		t.Errorf("MaxHeapSize() = %d, expected 512", got)
	}
	if got := p.Vendor(); got != "Oracle Corporation" {
		t.Errorf("Vendor() = %q", got)
	}
	if !p.IsG1GCEnabled() {
		t.Error("IsG1GCEnabled() should be true")
	}
}
