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

	version "github.com/hashicorp/go-version"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/bootcheck"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/probe"
)

// NewRuntimeVersionFloorCheck builds a supplemental check (not present
// in the distilled eleven-check set) comparing the probed runtime
// version against a configured floor via hashicorp/go-version, the same
// library and min/max comparison shape the embedding harness's ancestor
// used to gate supported API server versions. floor must itself parse;
// an unparseable floor is a configuration error raised synchronously.
//
// A probed version that is empty or fails to parse is treated as
// unknown and is never a violation, matching every other check's
// unknown-tolerant policy.
func NewRuntimeVersionFloorCheck(p probe.RuntimeInfoProbe, floor string) (bootcheck.Check, error) {
	minVersion, err := version.NewVersion(floor)
	if err != nil {
		return nil, bootcheck.NewConfigError("minimum runtime version [%s] does not parse: %v", floor, err)
	}

	violated := func() bool {
		raw := p.Version()
		if raw == "" {
			return false
		}
		probed, err := version.NewVersion(raw)
		if err != nil {
			return false
		}
		return probed.LessThan(minVersion)
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"runtime version [%s] is below the minimum supported version [%s]; upgrade the managed runtime",
			p.Version(), minVersion.String(),
		)
	}
	return bootcheck.NewCheck("runtime-version-floor", violated, diagnostic, false), nil
}
