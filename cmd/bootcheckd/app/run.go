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
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/bootcheck"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/bootcheck/catalogue"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/config"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/errlog"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/probe"
)

const (
	bindFlag    = "bind"
	publishFlag = "publish"
	statusFlag  = "status-addr"
)

func newRunCommand() *cobra.Command {
	var bind []string
	var publish string
	var statusAddr string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run bootstrap checks and, on success, start the demo status listener",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecksThenServe(bind, publish, statusAddr)
		},
	}

	cmd.Flags().StringSliceVar(&bind, bindFlag, []string{"127.0.0.1"}, "addresses this process will bind its listeners to")
	cmd.Flags().StringVar(&publish, publishFlag, "127.0.0.1", "address this process advertises to peers")
	cmd.Flags().StringVar(&statusAddr, statusFlag, "127.0.0.1:8080", "address for the demo /healthz status listener, started only after checks pass")

	return cmd
}

func runChecksThenServe(bind []string, publish, statusAddr string) error {
	transport, err := parseTransport(bind, publish)
	if err != nil {
		return err
	}

	limits, err := config.Load()
	if err != nil {
		return err
	}

	checks, err := buildCatalogue(limits)
	if err != nil {
		return err
	}

	spin := newSpinner()
	spin.Start()
	result, err := bootcheck.Run(transport, checks, "bootcheckd run", errlog.InfoLogger{})
	spin.Stop()

	if err != nil {
		printFailure(err)
		return err
	}

	fmt.Printf("bootstrap checks passed: %d active of %d total (mode=%s, invocation=%s)\n",
		result.ActiveCount, result.CheckCount, result.Mode, result.InvocationID)

	return serveStatus(statusAddr)
}

func parseTransport(bind []string, publish string) (bootcheck.BoundTransport, error) {
	var transport bootcheck.BoundTransport
	for _, b := range bind {
		ip := net.ParseIP(b)
		if ip == nil {
			return transport, fmt.Errorf("invalid bind address %q", b)
		}
		transport.BoundAddresses = append(transport.BoundAddresses, ip)
	}
	ip := net.ParseIP(publish)
	if ip == nil {
		return transport, fmt.Errorf("invalid publish address %q", publish)
	}
	transport.PublishAddress = ip
	return transport, nil
}

func buildCatalogue(limits *catalogue.Limits) ([]bootcheck.Check, error) {
	hostReader := probe.NewHostReader()
	limits.GOOS = hostReaderGOOS()
	envProbes := probe.EnvProbes{}

	probes := catalogue.Probes{
		Heap:           envProbes,
		FileDescriptor: envProbes,
		MemoryLock:     envProbes,
		Threads:        envProbes,
		AddressSpace:   envProbes,
		MapCount:       hostReader,
		Runtime:        envProbes,
		SyscallFilter:  envProbes,
		ForkDirective:  envProbes,
	}
	return catalogue.Build(probes, *limits)
}

func printFailure(err error) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}

func newSpinner() *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " running bootstrap checks..."
	return s
}

func hostReaderGOOS() string {
	return runtime.GOOS
}

func serveStatus(addr string) error {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return http.ListenAndServe(addr, router)
}
