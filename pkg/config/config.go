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

// Package config loads bootcheckd's operator-facing parameters (the
// file-descriptor floor, whether memory locking and syscall filters
// were requested, and the minimum supported runtime version) the way
// the embedding harness's ancestor loads its worker configuration:
// viper, with environment variable overrides and a config file
// discovered from a small set of well-known paths.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/bootcheck/catalogue"
	"github.com/vmware-tanzu/sonobuoy-bootcheck/pkg/buildinfo"
)

const (
	configFileName       = "bootcheck"
	fallbackConfigPath   = "/etc/bootcheckd"
	configFileEnvVarName = "BOOTCHECKD_CONFIG"
)

func setDefaults(limits *catalogue.Limits) {
	limits.FileDescriptorLimit = 0 // 0 selects the per-platform default floor.
	limits.MlockallRequested = false
	limits.SyscallFilterRequested = true
	limits.MinimumRuntimeVersion = buildinfo.DefaultMinimumRuntimeVersion
}

// Load builds a catalogue.Limits by reading a bootcheck.{json,yaml,toml}
// config file (searched in "." and fallbackConfigPath, or overridden via
// the BOOTCHECKD_CONFIG environment variable) layered over defaults and
// BOOTCHECKD_* environment variables. A missing config file is not an
// error; every field simply keeps its default or environment value.
func Load() (*catalogue.Limits, error) {
	limits := &catalogue.Limits{}
	setDefaults(limits)

	v := viper.New()
	v.SetConfigName(configFileName)
	v.AddConfigPath(".")
	v.AddConfigPath(fallbackConfigPath)

	if forced := os.Getenv(configFileEnvVarName); forced != "" {
		v.SetConfigFile(forced)
	}

	v.SetEnvPrefix("BOOTCHECKD")
	bindEnv(v, "filedescriptorlimit", "mlockallrequested", "syscallfilterrequested", "minimumruntimeversion")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "reading bootcheckd config")
		}
	}

	if fd := v.GetInt64("filedescriptorlimit"); fd != 0 {
		limits.FileDescriptorLimit = fd
	}
	if v.IsSet("mlockallrequested") {
		limits.MlockallRequested = v.GetBool("mlockallrequested")
	}
	if v.IsSet("syscallfilterrequested") {
		limits.SyscallFilterRequested = v.GetBool("syscallfilterrequested")
	}
	if s := v.GetString("minimumruntimeversion"); s != "" {
		limits.MinimumRuntimeVersion = s
	}

	return limits, nil
}

func bindEnv(v *viper.Viper, keys ...string) {
	for _, k := range keys {
		// BindEnv never errors for a single non-empty key; the returned
		// error only guards against the variadic empty-input case.
		_ = v.BindEnv(k)
	}
}
