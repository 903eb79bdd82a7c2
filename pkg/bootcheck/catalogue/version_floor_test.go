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

package catalogue

import (
	"fmt"
	"strings"
	"testing"
)

func TestRuntimeVersionFloorCheck(t *testing.T) {
	testCases := []struct {
		desc      string
		version   string
		floor     string
		violated  bool
		expectErr string
	}{
		{desc: "below floor violates", version: "1.7.0", floor: "1.8.0", violated: true},
		{desc: "equal to floor passes", version: "1.8.0", floor: "1.8.0", violated: false},
		{desc: "above floor passes", version: "1.9.0", floor: "1.8.0", violated: false},
		{desc: "empty version is unknown, passes", version: "", floor: "1.8.0", violated: false},
		{desc: "unparseable version is unknown, passes", version: "not-a-version", floor: "1.8.0", violated: false},
		{desc: "unparseable floor is a configuration error", floor: "not-a-version", expectErr: "does not parse"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			c, err := NewRuntimeVersionFloorCheck(fakeRuntimeProbe{version: tc.version}, tc.floor)
			if tc.expectErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tc.expectErr)
				}
				if !strings.Contains(err.Error(), tc.expectErr) {
					t.Fatalf("expected error containing %q, got %q", tc.expectErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := c.Violated(); got != tc.violated {
				t.Errorf("Violated() = %v, expected %v", got, tc.violated)
			}
			if tc.violated {
				want := fmt.Sprintf("runtime version [%s] is below the minimum supported version", tc.version)
				if !strings.Contains(c.Diagnostic(), want) {
					t.Errorf("diagnostic missing expected text: %q", c.Diagnostic())
				}
			}
		})
	}
}
