// Copyright (C) 2020 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package layer holds the interception layer's own configuration: a small
// settings file, separate from anything the intercepted application sees.
package layer

import (
	"os"

	"github.com/BurntSushi/toml"
	perrors "github.com/pkg/errors"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// SettingsEnv names the environment variable holding the path of the layer
// settings file. Unset means defaults.
const SettingsEnv = "ORBIT_VK_LAYER_SETTINGS"

// Settings configures the layer's own behavior. It never affects what is
// forwarded to the driver.
type Settings struct {
	// Verbosity is the commonlog verbosity, 0 (quiet) and up.
	Verbosity int `toml:"verbosity"`

	// LogPath is where the layer writes its log. Empty means stderr.
	LogPath string `toml:"log_path"`
}

// LoadSettings reads the settings file named by SettingsEnv. A missing or
// unset path yields the zero Settings; an unreadable or malformed file is an
// error, since a user who pointed the layer at a file meant it.
func LoadSettings() (Settings, error) {
	var s Settings
	path := os.Getenv(SettingsEnv)
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, perrors.Wrapf(err, "loading layer settings from %q", path)
	}
	return s, nil
}

// Apply configures the logging backend from the settings. Called once at
// layer load, before the first hook can run.
func (s Settings) Apply() {
	var path *string
	if s.LogPath != "" {
		path = &s.LogPath
	}
	commonlog.Configure(s.Verbosity, path)
}
