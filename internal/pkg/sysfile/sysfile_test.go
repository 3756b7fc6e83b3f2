// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sysfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/vmprov/firstboot/internal/pkg/sysfile"
)

type SysfileSuite struct {
	suite.Suite

	dir string
}

func TestSysfileSuite(t *testing.T) {
	suite.Run(t, new(SysfileSuite))
}

func (suite *SysfileSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *SysfileSuite) TestOverwrite() {
	path := filepath.Join(suite.dir, "myname")

	suite.Require().NoError(sysfile.Overwrite(path, []byte("server.example.com\n"), 0o644))

	b, err := os.ReadFile(path)
	suite.Require().NoError(err)
	suite.Assert().Equal("server.example.com\n", string(b))

	// whole-file replacement, no leftovers from the longer old content
	suite.Require().NoError(sysfile.Overwrite(path, []byte("x\n"), 0o644))

	b, err = os.ReadFile(path)
	suite.Require().NoError(err)
	suite.Assert().Equal("x\n", string(b))

	entries, err := os.ReadDir(suite.dir)
	suite.Require().NoError(err)
	suite.Assert().Len(entries, 1, "temporary files must not survive")
}

func (suite *SysfileSuite) TestOverwriteMode() {
	path := filepath.Join(suite.dir, "doas.conf")

	suite.Require().NoError(sysfile.Overwrite(path, []byte("permit nopass puffy as root\n"), 0o600))

	info, err := os.Stat(path)
	suite.Require().NoError(err)
	suite.Assert().Equal(os.FileMode(0o600), info.Mode().Perm())
}

func (suite *SysfileSuite) TestAppend() {
	path := filepath.Join(suite.dir, "authorized_keys")

	suite.Require().NoError(sysfile.Append(path, []byte("ssh-ed25519 AAAA first\n"), 0o600))
	suite.Require().NoError(sysfile.Append(path, []byte("ssh-ed25519 BBBB second\n"), 0o600))

	b, err := os.ReadFile(path)
	suite.Require().NoError(err)
	suite.Assert().Equal("ssh-ed25519 AAAA first\nssh-ed25519 BBBB second\n", string(b))
}
