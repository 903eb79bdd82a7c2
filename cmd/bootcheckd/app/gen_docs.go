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
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newGenDocsCommand(root *cobra.Command) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:    "gen-docs",
		Short:  "Generate Markdown documentation for the bootcheckd command tree",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doc.GenMarkdownTree(root, outDir)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "./docs", "directory to write generated Markdown into")
	return cmd
}
