// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package configdrive handles the read-only metadata volume the platform
// attaches at instance creation: mount, read the documents, unmount. The
// volume exists only to deliver first-boot metadata and is never written.
package configdrive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Mounter mounts and unmounts the config drive. It is a collaborator
// interface so tests can point a Drive at a plain directory.
type Mounter interface {
	Mount(ctx context.Context) error
	Unmount(ctx context.Context) error
}

// Drive is the mounted config drive.
type Drive struct {
	mounter    Mounter
	mountPoint string
}

// NewDrive returns a Drive reading through mountPoint once mounted.
func NewDrive(mounter Mounter, mountPoint string) *Drive {
	return &Drive{
		mounter:    mounter,
		mountPoint: mountPoint,
	}
}

// Mount makes the drive's documents readable. Mounting an already-mounted
// drive succeeds.
func (d *Drive) Mount(ctx context.Context) error {
	if err := d.mounter.Mount(ctx); err != nil {
		return fmt.Errorf("failed to mount config drive: %w", err)
	}

	return nil
}

// ReadFile reads one document by its path relative to the drive root.
func (d *Drive) ReadFile(relPath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.mountPoint, relPath))
}

// Unmount releases the drive. The device is ephemeral and not reused, so
// callers treat failures as log-and-continue.
func (d *Drive) Unmount(ctx context.Context) error {
	if err := d.mounter.Unmount(ctx); err != nil {
		return fmt.Errorf("failed to unmount config drive: %w", err)
	}

	return nil
}
