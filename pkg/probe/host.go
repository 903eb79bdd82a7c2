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
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const maxMapCountPath = "/proc/sys/vm/max_map_count"

// HostReader implements MapCountProbe (and, on hosts that expose it,
// AddressSpaceProbe's rlimit-infinity sentinel) by reading the live
// filesystem through an afero.Fs. Tests construct one over
// afero.NewMemMapFs() and seed it with synthetic file contents instead
// of depending on the real kernel being reachable.
type HostReader struct {
	fs afero.Fs
	os string
}

// NewHostReader returns a HostReader backed by the real OS filesystem.
func NewHostReader() *HostReader {
	return &HostReader{fs: afero.NewOsFs(), os: runtime.GOOS}
}

// NewHostReaderFS returns a HostReader backed by an arbitrary afero.Fs,
// for tests that want to seed /proc-style paths without touching disk.
func NewHostReaderFS(fs afero.Fs, goos string) *HostReader {
	return &HostReader{fs: fs, os: goos}
}

// MaxMapCount reads vm.max_map_count. Returns UnknownInt on any platform
// or filesystem error, since the tunable only exists on Linux.
func (h *HostReader) MaxMapCount() int64 {
	if h.os != "linux" {
		return UnknownInt
	}
	contents, err := afero.ReadFile(h.fs, maxMapCountPath)
	if err != nil {
		return UnknownInt
	}
	n, err := strconv.ParseInt(strings.TrimSpace(string(contents)), 10, 64)
	if err != nil {
		return UnknownInt
	}
	return n
}

// RlimitInfinity returns the host's sentinel for "this rlimit is
// unlimited": math.MaxInt64 on macOS, -1 everywhere else.
func (h *HostReader) RlimitInfinity() int64 {
	if h.os == "darwin" {
		return 9223372036854775807
	}
	return -1
}

// FileDescriptorFloor returns the default FD floor for goos: 10240 on
// macOS, 65536 on every other platform, and an error for an empty goos.
// The catalogue's NewFileDescriptorCheckForHost does not call it; it
// selects its floor from its own constants.
func FileDescriptorFloor(goos string) (int64, error) {
	switch goos {
	case "darwin":
		return 10240, nil
	case "":
		return 0, errors.New("goos must not be empty")
	default:
		return 65536, nil
	}
}
