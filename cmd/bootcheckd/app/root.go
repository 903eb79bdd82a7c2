/*
Copyright 2017 Heptio Inc.

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

package app

import (
	"flag"

	"github.com/spf13/cobra"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/errlog"
)

// NewRootCommand builds the bootcheckd command tree: "run" wires probes
// and config into the engine and, only on success, starts the demo
// status listener; "gen-docs" emits Markdown reference pages for the
// bootcheckd command tree. bootcheckd itself is an embedding-harness demonstration,
// never part of the engine's own contract (spec.md §6: "no CLI ... at
// this layer").
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bootcheckd",
		Short: "Run pre-start bootstrap checks before opening a listener",
		Long:  "bootcheckd demonstrates wiring the bootstrap-checks engine into a long-running server process's startup path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.PersistentFlags().BoolVarP(&errlog.DebugOutput, "debug", "d", false, "enable debug output (includes stack traces)")
	root.PersistentFlags().VarP(&errlog.LogLevel, "loglevel", "l", "log level: panic, fatal, error, warn, info, debug, trace")

	root.AddCommand(newRunCommand())
	root.AddCommand(newGenDocsCommand(root))

	return root
}
