// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package metadata parses the two config-drive documents into typed
// structures so that the pipeline stages consume fields, not raw text.
package metadata

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/siderolabs/gen/xslices"
)

// Link describes a physical link entry of the network-topology document.
type Link struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type"`
	Mac  string `json:"ethernet_mac_address,omitempty"`
}

// Network describes a static address entry of the network-topology document.
type Network struct {
	ID      string `json:"id,omitempty"`
	Link    string `json:"link"`
	Type    string `json:"type"`
	Address string `json:"ip_address,omitempty"`
	Netmask string `json:"netmask,omitempty"`
	Gateway string `json:"gateway,omitempty"`
}

// Service describes a network service entry (DNS) of the network-topology
// document.
type Service struct {
	Type    string `json:"type"`
	Address string `json:"address"`
}

// NetworkData holds the platform's network-topology document
// (network_data.json). Absent fields are zero values; only a document that
// fails to decode at all is an error.
type NetworkData struct {
	Links    []Link    `json:"links"`
	Networks []Network `json:"networks"`
	Services []Service `json:"services,omitempty"`
}

// ParseNetworkData decodes the network-topology document.
func ParseNetworkData(b []byte) (*NetworkData, error) {
	networkData := &NetworkData{}

	if err := json.Unmarshal(b, networkData); err != nil {
		return nil, fmt.Errorf("failed to decode network data: %w", err)
	}

	return networkData, nil
}

// HardwareAddr returns the declared hardware address of the first link, or
// an empty string when the document declares none.
func (n *NetworkData) HardwareAddr() string {
	for _, link := range n.Links {
		if link.Mac != "" {
			return link.Mac
		}
	}

	return ""
}

// IPv6Address returns the declared static IPv6 address, without any prefix
// length the document may carry, or an empty string.
func (n *NetworkData) IPv6Address() string {
	for _, network := range n.Networks {
		if isIPv6Type(network.Type) && network.Address != "" {
			addr, _, _ := strings.Cut(network.Address, "/")

			return addr
		}
	}

	return ""
}

// IPv6Gateway returns the declared IPv6 gateway address, or an empty string.
// The address may be link-local; qualifying it with a zone is the caller's
// concern, since only the caller knows the resolved interface.
func (n *NetworkData) IPv6Gateway() string {
	for _, network := range n.Networks {
		if isIPv6Type(network.Type) && network.Gateway != "" {
			return network.Gateway
		}
	}

	return ""
}

// DNSServers returns the addresses of all DNS service entries in document
// order, duplicates included.
func (n *NetworkData) DNSServers() []string {
	services := xslices.Filter(n.Services, func(s Service) bool {
		return s.Type == "dns" && s.Address != ""
	})

	return xslices.Map(services, func(s Service) string { return s.Address })
}

func isIPv6Type(t string) bool {
	return t == "ipv6" || strings.HasPrefix(t, "ipv6_")
}
