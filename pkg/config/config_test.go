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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/buildinfo"
)

func TestLoadDefaultsWithNoConfigFile(t *testing.T) {
	t.Setenv(configFileEnvVarName, filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	limits, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limits.FileDescriptorLimit != 0 {
		t.Errorf("FileDescriptorLimit = %d, want 0 (host default)", limits.FileDescriptorLimit)
	}
	if limits.MlockallRequested {
		t.Error("MlockallRequested should default false")
	}
	if !limits.SyscallFilterRequested {
		t.Error("SyscallFilterRequested should default true")
	}
	if limits.MinimumRuntimeVersion != buildinfo.DefaultMinimumRuntimeVersion {
		t.Errorf("MinimumRuntimeVersion = %q, want %q", limits.MinimumRuntimeVersion, buildinfo.DefaultMinimumRuntimeVersion)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bootcheck.yaml")
	contents := "filedescriptorlimit: 4096\nmlockallrequested: true\nminimumruntimeversion: \"2.0.0\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fake config file: %v", err)
	}
	t.Setenv(configFileEnvVarName, path)

	limits, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limits.FileDescriptorLimit != 4096 {
		t.Errorf("FileDescriptorLimit = %d, want 4096", limits.FileDescriptorLimit)
	}
	if !limits.MlockallRequested {
		t.Error("expected MlockallRequested to be true from config file")
	}
	if limits.MinimumRuntimeVersion != "2.0.0" {
		t.Errorf("MinimumRuntimeVersion = %q, want 2.0.0", limits.MinimumRuntimeVersion)
	}
}

func TestLoadEnvOverridesDefault(t *testing.T) {
	t.Setenv(configFileEnvVarName, filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	t.Setenv("BOOTCHECKD_SYSCALLFILTERREQUESTED", "false")

	limits, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limits.SyscallFilterRequested {
		t.Error("expected environment override to disable SyscallFilterRequested")
	}
}
