// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package nic resolves the single network interface the pipeline operates
// on from the hardware address declared in the network-topology document.
package nic

import (
	"strings"

	"github.com/vmprov/firstboot/internal/pkg/netstate"
)

// Resolve returns the name of the first live interface whose hardware
// address matches mac case-insensitively, or fallback when mac is empty or
// nothing matches. It never fails: the platform's single virtio NIC makes
// the fallback name a safe bet.
func Resolve(mac string, interfaces []netstate.Interface, fallback string) string {
	if mac != "" {
		for _, iface := range interfaces {
			if strings.EqualFold(iface.HardwareAddr, mac) {
				return iface.Name
			}
		}
	}

	return fallback
}
