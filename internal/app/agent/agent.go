// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package agent implements the first-boot provisioning pipeline: load
// metadata from the config drive, resolve the network interface, configure
// identity, network, and administrative access, then reconcile services.
// The pipeline runs exactly once per machine lifetime.
package agent

import (
	"fmt"

	"github.com/vmprov/firstboot/internal/pkg/configdrive"
	"github.com/vmprov/firstboot/internal/pkg/metadata"
	"github.com/vmprov/firstboot/internal/pkg/netstate"
	"github.com/vmprov/firstboot/internal/pkg/services"
	"github.com/vmprov/firstboot/pkg/constants"
)

// Config carries the paths and names the pipeline operates on. Defaults
// come from pkg/constants; tests point them into a scratch directory.
type Config struct {
	Device     string
	MountPoint string

	NetworkDataPath string
	UserDataPath    string

	DefaultInterface string

	MynamePath        string
	HostnameIfPattern string
	MygatePath        string
	ResolvConfPath    string

	AuthorizedKeysPath string
	DoasConfPath       string
	AdminUser          string

	HostKeyGlob string
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		Device:             constants.ConfigDriveDevice,
		MountPoint:         constants.ConfigDriveMountPoint,
		NetworkDataPath:    constants.NetworkDataPath,
		UserDataPath:       constants.UserDataPath,
		DefaultInterface:   constants.DefaultInterface,
		MynamePath:         constants.MynamePath,
		HostnameIfPattern:  constants.HostnameIfPattern,
		MygatePath:         constants.MygatePath,
		ResolvConfPath:     constants.ResolvConfPath,
		AuthorizedKeysPath: constants.AuthorizedKeysPath,
		DoasConfPath:       constants.DoasConfPath,
		AdminUser:          constants.AdminUser,
		HostKeyGlob:        constants.HostKeyGlob,
	}
}

// InterfaceConfigPath returns the interface configuration file for iface.
func (c Config) InterfaceConfigPath(iface string) string {
	return fmt.Sprintf(c.HostnameIfPattern, iface)
}

// Runtime is the explicit pipeline context: configuration, collaborators,
// and the state earlier phases produce for later ones. It replaces any
// process-wide shared state; every task receives the same *Runtime.
type Runtime struct {
	Config Config

	Drive    *configdrive.Drive
	Net      netstate.Querier
	Services services.Runner

	// Populated by the metadata phase.
	NetworkData *metadata.NetworkData
	UserData    *metadata.UserData

	// Populated by the link phase; immutable afterwards. Interfaces is
	// the live state observed at resolution time, reused by the network
	// phase so reads strictly precede any write that could invalidate
	// them.
	LinkName   string
	Interfaces []netstate.Interface
}

// NewRuntime wires the production collaborators for cfg.
func NewRuntime(cfg Config) *Runtime {
	mounter := configdrive.ExecMounter{
		Device:     cfg.Device,
		MountPoint: cfg.MountPoint,
	}

	return &Runtime{
		Config:   cfg,
		Drive:    configdrive.NewDrive(mounter, cfg.MountPoint),
		Net:      netstate.ExecQuerier{},
		Services: services.RcctlRunner{},
	}
}
