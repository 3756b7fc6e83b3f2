// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package configdrive_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmprov/firstboot/internal/pkg/configdrive"
)

type dirMounter struct {
	mountErr   error
	unmountErr error
}

func (m dirMounter) Mount(context.Context) error   { return m.mountErr }
func (m dirMounter) Unmount(context.Context) error { return m.unmountErr }

func TestDriveReadFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "openstack", "latest"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openstack", "latest", "user_data"), []byte("#cloud-config\n"), 0o644))

	drive := configdrive.NewDrive(dirMounter{}, dir)

	ctx := context.Background()

	require.NoError(t, drive.Mount(ctx))

	b, err := drive.ReadFile("openstack/latest/user_data")
	require.NoError(t, err)
	assert.Equal(t, "#cloud-config\n", string(b))

	_, err = drive.ReadFile("openstack/latest/network_data.json")
	assert.Error(t, err)

	require.NoError(t, drive.Unmount(ctx))
}

func TestDriveMountError(t *testing.T) {
	mountErr := errors.New("mount_cd9660: No such file or directory")

	drive := configdrive.NewDrive(dirMounter{mountErr: mountErr}, t.TempDir())

	err := drive.Mount(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, mountErr))
}

func TestDriveUnmountError(t *testing.T) {
	unmountErr := errors.New("umount: Device busy")

	drive := configdrive.NewDrive(dirMounter{unmountErr: unmountErr}, t.TempDir())

	assert.Error(t, drive.Unmount(context.Background()))
}
