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

import (
	"testing"

	"github.com/spf13/afero"
)

func TestHostReaderMaxMapCount(t *testing.T) {
	testCases := []struct {
		desc     string
		goos     string
		contents string
		seedFile bool
		expected int64
	}{
		{desc: "linux reads the tunable", goos: "linux", contents: "65530\n", seedFile: true, expected: 65530},
		{desc: "linux missing file is unknown", goos: "linux", seedFile: false, expected: UnknownInt},
		{desc: "linux unparseable contents is unknown", goos: "linux", contents: "not-a-number", seedFile: true, expected: UnknownInt},
		{desc: "non-linux platform is unknown", goos: "darwin", contents: "65530", seedFile: true, expected: UnknownInt},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tc.seedFile {
				if err := afero.WriteFile(fs, maxMapCountPath, []byte(tc.contents), 0o644); err != nil {
					t.Fatalf("seeding fake /proc file: %v", err)
				}
			}
			reader := NewHostReaderFS(fs, tc.goos)
			if got := reader.MaxMapCount(); got != tc.expected {
				t.Errorf("MaxMapCount() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestHostReaderRlimitInfinity(t *testing.T) {
	if got := NewHostReaderFS(afero.NewMemMapFs(), "darwin").RlimitInfinity(); got != 9223372036854775807 {
		t.Errorf("darwin RlimitInfinity() = %d", got)
	}
	if got := NewHostReaderFS(afero.NewMemMapFs(), "linux").RlimitInfinity(); got != -1 {
		t.Errorf("linux RlimitInfinity() = %d", got)
	}
}

func TestFileDescriptorFloor(t *testing.T) {
	testCases := []struct {
		goos     string
		expected int64
	}{
		{goos: "darwin", expected: 10240},
		{goos: "linux", expected: 65536},
		{goos: "windows", expected: 65536},
	}
	for _, tc := range testCases {
		t.Run(tc.goos, func(t *testing.T) {
			got, err := FileDescriptorFloor(tc.goos)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("FileDescriptorFloor(%q) = %d, expected %d", tc.goos, got, tc.expected)
			}
		})
	}
	if _, err := FileDescriptorFloor(""); err == nil {
		t.Fatal("expected error for empty goos")
	}
}
