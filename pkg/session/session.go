// Package session persists the worker login between CLI invocations,
// under ~/.shiftdesk. Only identity fields are stored, never
// credentials.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ocroft/shiftdesk/pkg/core/model"
)

const (
	sessionDir  = ".shiftdesk"
	sessionFile = "session.yaml"
)

// ErrNoSession is returned by Load when no worker is logged in.
var ErrNoSession = errors.New("no active session")

// Save writes the session file, creating the directory if needed.
func Save(sess model.WorkerSession) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads the persisted session, or ErrNoSession when absent.
func Load() (*model.WorkerSession, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess model.WorkerSession
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return &sess, nil
}

// Clear removes the session file. Clearing an absent session is fine.
func Clear() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

func sessionPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, sessionDir, sessionFile), nil
}
