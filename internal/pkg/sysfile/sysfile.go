// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sysfile writes system configuration files. Overwrite goes
// through a temporary file and rename on the same filesystem, so a service
// reading the file concurrently sees either the old or the new content,
// never a truncated mix.
package sysfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Overwrite atomically replaces the whole content of path.
func Overwrite(path string, content []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}

	defer os.Remove(tmp.Name()) //nolint:errcheck

	if err = tmp.Chmod(mode); err != nil {
		tmp.Close() //nolint:errcheck

		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}

	if _, err = tmp.Write(content); err != nil {
		tmp.Close() //nolint:errcheck

		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", tmp.Name(), path, err)
	}

	return nil
}

// Append adds content to the end of path, creating it with mode if it does
// not exist. Appending is deliberately not idempotent; callers that re-run
// will duplicate lines.
func Append(path string, content []byte, mode os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, mode)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", path, err)
	}

	if _, err = f.Write(content); err != nil {
		f.Close() //nolint:errcheck

		return fmt.Errorf("failed to append to %s: %w", path, err)
	}

	return f.Close()
}
