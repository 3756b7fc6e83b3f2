// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package constants defines the well-known paths and platform constants the
// agent operates on. The default interface name and the IPv6 prefix length
// are properties of the hosting platform's virtio NIC and addressing scheme;
// they are fixed here on purpose and must not be derived at runtime.
package constants

const (
	// ConfigDriveDevice is the block device node the platform attaches the
	// config drive at.
	ConfigDriveDevice = "/dev/cd0c"

	// ConfigDriveMountPoint is where the config drive is mounted for the
	// duration of the run.
	ConfigDriveMountPoint = "/mnt"

	// NetworkDataPath is the network-topology document, relative to the
	// config drive root.
	NetworkDataPath = "openstack/latest/network_data.json"

	// UserDataPath is the user-supplied configuration document, relative to
	// the config drive root.
	UserDataPath = "openstack/latest/user_data"

	// DefaultInterface is the interface name used when the network document
	// declares no hardware address or no live interface matches it. The
	// platform exposes a single virtio NIC under this name.
	DefaultInterface = "vio0"

	// IPv6PrefixLength is the prefix length applied to every metadata IPv6
	// address. The platform always allocates /64 networks.
	IPv6PrefixLength = 64

	// MynamePath is the persistent hostname record.
	MynamePath = "/etc/myname"

	// HostnameIfPattern is the per-interface configuration file, formatted
	// with the interface name.
	HostnameIfPattern = "/etc/hostname.%s"

	// MygatePath is the default-route record.
	MygatePath = "/etc/mygate"

	// ResolvConfPath is the resolver configuration.
	ResolvConfPath = "/etc/resolv.conf"

	// AdminUser is the administrative account provisioned by the unattended
	// installer.
	AdminUser = "puffy"

	// AuthorizedKeysPath is the admin account's authorized-keys file.
	AuthorizedKeysPath = "/home/puffy/.ssh/authorized_keys"

	// DoasConfPath is the privilege-elevation rule file.
	DoasConfPath = "/etc/doas.conf"

	// HostKeyGlob matches the SSH public host keys emitted on the console at
	// startup.
	HostKeyGlob = "/etc/ssh/ssh_host_*_key.pub"

	// HostKeyBannerBegin and HostKeyBannerEnd delimit the host keys on the
	// console for the platform's scraper.
	HostKeyBannerBegin = "-----BEGIN SSH HOST KEY KEYS-----"
	HostKeyBannerEnd   = "-----END SSH HOST KEY KEYS-----"

	// CloudConfigHeader tags a user document as a cloud-config document.
	// User documents without this tag are opaque to the agent.
	CloudConfigHeader = "#cloud-config"
)
