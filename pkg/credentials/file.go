// Copyright 2020 Dragonchain, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package credentials

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/ini.v1"
)

// INI keys used in the credentials file.
const (
	fileSectionDefault = "default"
	fileKeyChainID     = "dragonchain_id"
	fileKeyAuthKey     = "auth_key"
	fileKeyAuthKeyID   = "auth_key_id"
	fileKeyEndpoint    = "endpoint"
	fileKeyAlgorithm   = "algorithm"
)

// FileSource reads the dragonchain credentials file, an INI document with a
// [default] section naming the default chain and one section per chain id:
//
//	[default]
//	dragonchain_id = ec3e6dac-2b70-4735-97e4-fbb1d1f0af4e
//
//	[ec3e6dac-2b70-4735-97e4-fbb1d1f0af4e]
//	auth_key_id = JSDMWFUJDVTC
//	auth_key = n3hlldsFxFdP2De3IMVZ3rjaRK8boGD4wzE4CJLbrDQa
//	endpoint = https://ec3e6dac.example.com
//
// A missing file is not an error; every lookup simply reports not found.
type FileSource struct {
	path string
}

// NewFileSource creates a source over the credentials file at path. An
// empty path selects the platform default location.
func NewFileSource(path string) *FileSource {
	if path == "" {
		path = DefaultFilePath()
	}
	return &FileSource{path: path}
}

// DefaultFilePath returns the platform location of the credentials file:
// ~/.dragonchain/credentials, or %LOCALAPPDATA%\dragonchain\credentials on
// Windows.
func DefaultFilePath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "dragonchain", "credentials")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dragonchain", "credentials")
}

// Name identifies the source in logs and error messages.
func (s *FileSource) Name() string {
	return "file"
}

// Path returns the credentials file location this source reads.
func (s *FileSource) Path() string {
	return s.path
}

// Available reports true whenever a path could be determined; a missing
// file is handled per lookup.
func (s *FileSource) Available() bool {
	return s.path != ""
}

// DragonchainID returns the default chain id named in the [default] section.
func (s *FileSource) DragonchainID(ctx context.Context) (string, error) {
	cfg, err := s.load()
	if err != nil {
		return "", err
	}
	id := cfg.Section(fileSectionDefault).Key(fileKeyChainID).String()
	if id == "" {
		return "", ErrNotFound
	}
	return id, nil
}

// AuthKey returns the key pair from the chain's own section.
func (s *FileSource) AuthKey(ctx context.Context, dragonchainID string) (string, string, error) {
	cfg, err := s.load()
	if err != nil {
		return "", "", err
	}
	section := cfg.Section(dragonchainID)
	keyID := section.Key(fileKeyAuthKeyID).String()
	key := section.Key(fileKeyAuthKey).String()
	if keyID == "" || key == "" {
		return "", "", ErrNotFound
	}
	return keyID, key, nil
}

// Endpoint returns the endpoint override from the chain's own section.
func (s *FileSource) Endpoint(ctx context.Context, dragonchainID string) (string, error) {
	cfg, err := s.load()
	if err != nil {
		return "", err
	}
	endpoint := cfg.Section(dragonchainID).Key(fileKeyEndpoint).String()
	if endpoint == "" {
		return "", ErrNotFound
	}
	return endpoint, nil
}

// Chains lists the chain ids configured in the file, excluding the
// [default] pointer section.
func (s *FileSource) Chains() ([]string, error) {
	cfg, err := s.load()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var chains []string
	for _, name := range cfg.SectionStrings() {
		if name == ini.DefaultSection || name == fileSectionDefault {
			continue
		}
		chains = append(chains, name)
	}
	return chains, nil
}

// Algorithm returns the HMAC algorithm preference recorded for a chain, or
// the empty string when none is configured.
func (s *FileSource) Algorithm(dragonchainID string) string {
	cfg, err := s.load()
	if err != nil {
		return ""
	}
	return cfg.Section(dragonchainID).Key(fileKeyAlgorithm).String()
}

// Save writes or updates a chain's entry, creating the file with owner-only
// permissions when missing. When setDefault is true the [default] section is
// pointed at this chain. An empty endpoint or algorithm leaves any existing
// value untouched.
func (s *FileSource) Save(dragonchainID, authKeyID, authKey, endpoint, algorithm string, setDefault bool) error {
	cfg, err := s.load()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		cfg = ini.Empty()
	}

	section := cfg.Section(dragonchainID)
	section.Key(fileKeyAuthKeyID).SetValue(authKeyID)
	section.Key(fileKeyAuthKey).SetValue(authKey)
	if endpoint != "" {
		section.Key(fileKeyEndpoint).SetValue(endpoint)
	}
	if algorithm != "" {
		section.Key(fileKeyAlgorithm).SetValue(algorithm)
	}
	if setDefault {
		cfg.Section(fileSectionDefault).Key(fileKeyChainID).SetValue(dragonchainID)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := cfg.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *FileSource) load() (*ini.File, error) {
	cfg, err := ini.Load(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cfg, nil
}
