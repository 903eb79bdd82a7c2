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

// Package bootcheck is the pre-start environment validation engine: it
// runs an ordered suite of independent Check values and aggregates any
// violations into a single ValidationFailure before a long-running
// server process opens its listening sockets to non-local peers. See
// preflight.go in the embedding harness's Kubernetes-flavored ancestor
// for the slice-of-checks shape this package generalizes.
package bootcheck

import (
	"github.com/google/uuid"
)

// productionBindMessage is logged exactly once, only when a
// BoundTransport snapshot resolves to Production mode. Its text is a
// fixed external contract; never alter it.
const productionBindMessage = "bound or publishing to a non-loopback or non-link-local address, enforcing bootstrap checks"

// Logger is the minimal sink the engine calls into. It is never invoked
// more than once per Run call, and never invoked at all by RunWithMode.
type Logger interface {
	Info(msg string)
}

// NopLogger discards every message; useful for RunWithMode callers and
// for tests that don't care about the single informational log line.
type NopLogger struct{}

// Info implements Logger.
func (NopLogger) Info(string) {}

// Result is the engine's invocation record: a snapshot of the mode and
// checks it ran, plus an identifier correlating this run across log
// lines. A non-nil result is always returned, even alongside a non-nil
// error, so callers can inspect which checks ran.
type Result struct {
	Mode           EnforcementMode
	Label          string
	InvocationID   string
	CheckCount     int
	ActiveCount    int
	ViolatedChecks []string
}

// Run resolves the enforcement mode from a bound-transport snapshot,
// logs the fixed informational line iff that mode is Production, and
// then runs checks exactly as RunWithMode does.
func Run(transport BoundTransport, checks []Check, label string, logger Logger) (*Result, error) {
	mode := ResolveMode(transport)
	if mode == Production {
		if logger == nil {
			logger = NopLogger{}
		}
		logger.Info(productionBindMessage)
	}
	return runChecks(mode, checks, label)
}

// RunWithMode runs checks under an explicit mode, skipping all
// address-based logging. Used by tests and by embedding harnesses that
// have already resolved their own mode.
func RunWithMode(mode EnforcementMode, checks []Check, label string) (*Result, error) {
	return runChecks(mode, checks, label)
}

func runChecks(mode EnforcementMode, checks []Check, label string) (*Result, error) {
	result := &Result{
		Mode:         mode,
		Label:        label,
		InvocationID: uuid.New().String(),
		CheckCount:   len(checks),
	}

	var diagnostics []string
	var causes []error
	for _, check := range checks {
		active := mode == Production || check.AlwaysEnforced()
		if !active {
			continue
		}
		result.ActiveCount++
		if !check.Violated() {
			continue
		}
		diagnostic := check.Diagnostic()
		diagnostics = append(diagnostics, diagnostic)
		causes = append(causes, newDiagnosticCause(diagnostic))
		result.ViolatedChecks = append(result.ViolatedChecks, check.ID())
	}

	if len(diagnostics) == 0 {
		return result, nil
	}
	return result, newValidationFailure(diagnostics, causes)
}
