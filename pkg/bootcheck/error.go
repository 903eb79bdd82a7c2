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

package bootcheck

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// validationSummary is the fixed top-level message of an aggregated
// failure; operators and tests both match on it verbatim.
const validationSummary = "bootstrap checks failed"

// ValidationFailure is the single aggregated error the engine raises
// when one or more active checks violate. Summary is the composite
// human-readable message; Causes carries one entry per violation, in
// the same order the checks were supplied, so programmatic consumers
// can enumerate individual violations without re-parsing Summary.
type ValidationFailure struct {
	Summary string
	Causes  []error
}

// Error implements the error interface.
func (f *ValidationFailure) Error() string {
	return f.Summary
}

// Diagnostics returns each cause's message, in order, for callers that
// want the raw per-check strings without walking Causes themselves.
func (f *ValidationFailure) Diagnostics() []string {
	out := make([]string, len(f.Causes))
	for i, c := range f.Causes {
		out[i] = c.Error()
	}
	return out
}

func newValidationFailure(diagnostics []string, causes []error) *ValidationFailure {
	var b strings.Builder
	b.WriteString(validationSummary)
	for _, d := range diagnostics {
		b.WriteByte('\n')
		b.WriteString(d)
	}
	return &ValidationFailure{Summary: b.String(), Causes: causes}
}

func newDiagnosticCause(diagnostic string) error {
	return errors.New(diagnostic)
}

// ConfigError is raised synchronously from check constructors (e.g. a
// non-positive file-descriptor floor) and is never aggregated into a
// ValidationFailure.
type ConfigError struct {
	msg string
}

// Error implements the error interface.
func (e *ConfigError) Error() string { return e.msg }

// NewConfigError builds a ConfigError wrapping a pkg/errors stack for
// diagnosability, matching the way constructors throughout this repo
// report misconfiguration.
func NewConfigError(format string, args ...interface{}) error {
	return errors.WithStack(&ConfigError{msg: fmt.Sprintf(format, args...)})
}
