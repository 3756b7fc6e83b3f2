// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package configdrive

import (
	"context"
	"strings"

	"github.com/siderolabs/go-cmd/pkg/cmd"
)

// ExecMounter mounts the config drive read-only via mount(8).
type ExecMounter struct {
	Device     string
	MountPoint string
}

// Mount implements the Mounter interface. A "Device busy" failure means
// the drive is already mounted and counts as success.
func (m ExecMounter) Mount(ctx context.Context) error {
	_, err := cmd.RunContext(ctx, "/sbin/mount", "-r", m.Device, m.MountPoint)
	if err != nil && strings.Contains(err.Error(), "Device busy") {
		return nil
	}

	return err
}

// Unmount implements the Mounter interface.
func (m ExecMounter) Unmount(ctx context.Context) error {
	_, err := cmd.RunContext(ctx, "/sbin/umount", m.MountPoint)

	return err
}
