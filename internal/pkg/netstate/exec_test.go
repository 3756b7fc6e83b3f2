// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//nolint: testpackage
package netstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleIfconfig = `lo0: flags=8049<UP,LOOPBACK,RUNNING,MULTICAST> mtu 32768
	index 3 priority 0 llprio 3
	groups: lo
	inet6 ::1 prefixlen 128
	inet 127.0.0.1 netmask 0xff000000
vio0: flags=8843<UP,BROADCAST,RUNNING,SIMPLEX,MULTICAST> mtu 1500
	lladdr fe:e1:ba:d0:6e:0f
	index 1 priority 0 llprio 3
	groups: egress
	media: Ethernet autoselect
	status: active
	inet 203.0.113.8 netmask 0xffffff00 broadcast 203.0.113.255
	inet6 fe80::fce1:baff:fed0:6e0f%vio0 prefixlen 64 scopeid 0x1
enc0: flags=0<>
	index 2 priority 0 llprio 3
	groups: enc
	status: active
`

const sampleRoutes = `Routing tables

Internet:
Destination        Gateway            Flags   Refs      Use   Mtu  Prio Iface
default            203.0.113.1        UGS        8  1241936     -     8 vio0
224/4              127.0.0.1          URS        0   261278 32768     8 lo0
203.0.113/24       link#1             UC         1        1     -     4 vio0
203.0.113.1        52:54:00:12:35:02  UHLch      1       69     -     3 vio0
localhost          localhost          UHl        1       45 32768     1 lo0
`

func TestParseIfconfig(t *testing.T) {
	interfaces := parseIfconfig(sampleIfconfig)
	require.Len(t, interfaces, 3)

	assert.Equal(t, Interface{
		Name:        "lo0",
		IPv4Address: "127.0.0.1",
		IPv4Netmask: "0xff000000",
	}, interfaces[0])

	assert.Equal(t, Interface{
		Name:         "vio0",
		HardwareAddr: "fe:e1:ba:d0:6e:0f",
		IPv4Address:  "203.0.113.8",
		IPv4Netmask:  "0xffffff00",
	}, interfaces[1])

	assert.Equal(t, Interface{Name: "enc0"}, interfaces[2])
}

func TestParseIfconfigEmpty(t *testing.T) {
	assert.Empty(t, parseIfconfig(""))
}

func TestParseRoutes(t *testing.T) {
	routes := parseRoutes(sampleRoutes)
	require.Len(t, routes, 1)

	assert.Equal(t, Route{
		Destination: "default",
		Gateway:     "203.0.113.1",
		Interface:   "vio0",
	}, routes[0])
}

func TestParseRoutesNoDefault(t *testing.T) {
	assert.Empty(t, parseRoutes("Routing tables\n\nInternet:\n"))
}
