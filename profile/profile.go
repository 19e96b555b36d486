// Package profile manages user output profiles stored in ~/.marcwalk/profiles.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/marcwalk/mapping"
)

// configDirOverride holds a user-specified configuration directory.
// When empty, the default $HOME/.marcwalk is used.
var configDirOverride string

// SetConfigDir overrides the default configuration directory.
func SetConfigDir(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the marcwalk configuration directory.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".marcwalk"), nil
}

// ProfilesDir returns the profiles directory.
func ProfilesDir() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "profiles"), nil
}

// EnsureProfilesDir creates the profiles directory if it doesn't exist.
func EnsureProfilesDir() error {
	dir, err := ProfilesDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ProfilePath returns the path for a profile file.
func ProfilePath(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("profile name is empty")
	}
	dir, err := ProfilesDir()
	if err != nil {
		return "", err
	}
	name = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid profile name %q", name)
	}
	return filepath.Join(dir, name+".yaml"), nil
}

// Save writes the profile to disk under its name.
func Save(p *mapping.Profile) error {
	if err := EnsureProfilesDir(); err != nil {
		return fmt.Errorf("creating profiles directory: %w", err)
	}

	path, err := ProfilePath(p.Name)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	return nil
}

// Load reads a profile from disk.
func Load(name string) (*mapping.Profile, error) {
	path, err := ProfilePath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profile %q not found", name)
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	p, err := mapping.LoadProfileFromString(string(data))
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}

	return p, nil
}

// List returns all available profile names in sorted order.
func List() ([]string, error) {
	dir, err := ProfilesDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profiles directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			names = append(names, strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml"))
		}
	}
	sort.Strings(names)

	return names, nil
}

// Delete removes a profile.
func Delete(name string) error {
	path, err := ProfilePath(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("profile %q not found", name)
		}
		return fmt.Errorf("deleting profile: %w", err)
	}

	return nil
}

// Exists checks if a profile exists.
func Exists(name string) bool {
	path, err := ProfilePath(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Resolve finds a profile by name: user profiles first, then the embedded
// ones. A user profile named after an embedded one is merged over it.
func Resolve(name string) (*mapping.Profile, error) {
	registry, err := mapping.NewProfileRegistry()
	if err != nil {
		return nil, err
	}
	embedded, hasEmbedded := registry.Get(name)

	if Exists(name) {
		p, err := Load(name)
		if err != nil {
			return nil, fmt.Errorf("loading user profile: %w", err)
		}
		if hasEmbedded {
			return mapping.MergeProfiles(embedded, p), nil
		}
		return p, nil
	}

	if hasEmbedded {
		return embedded, nil
	}
	return nil, fmt.Errorf("unknown profile: %s (not found in ~/.marcwalk/profiles/ or embedded profiles)", name)
}
