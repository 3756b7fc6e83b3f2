// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package netstate exposes the live network state of the host through
// narrow query interfaces, so that the pipeline never scans ifconfig(8)
// output itself and tests can substitute fixtures.
package netstate

import "context"

// Interface describes one live network interface as currently configured,
// including the IPv4 address and netmask bound earlier in boot by the
// automatic address-acquisition mechanism. The netmask is kept in the
// kernel's hexadecimal form (e.g. 0xffffff00) because that is how it is
// written back into the interface configuration file.
type Interface struct {
	Name         string
	HardwareAddr string
	IPv4Address  string
	IPv4Netmask  string
}

// Route describes one kernel routing-table entry.
type Route struct {
	Destination string
	Gateway     string
	Interface   string
}

// Querier enumerates live interfaces and default routes.
type Querier interface {
	Interfaces(ctx context.Context) ([]Interface, error)
	DefaultRoutes(ctx context.Context) ([]Route, error)
}
