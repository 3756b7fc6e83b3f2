// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package nic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmprov/firstboot/internal/pkg/netstate"
	"github.com/vmprov/firstboot/internal/pkg/nic"
)

func TestResolve(t *testing.T) {
	interfaces := []netstate.Interface{
		{Name: "lo0"},
		{Name: "vio0", HardwareAddr: "fe:e1:ba:d0:6e:0f"},
		{Name: "vio1", HardwareAddr: "fe:e1:ba:d0:6e:10"},
	}

	for _, tt := range []struct {
		name     string
		mac      string
		expected string
	}{
		{
			name:     "exact match",
			mac:      "fe:e1:ba:d0:6e:0f",
			expected: "vio0",
		},
		{
			name:     "case-insensitive match",
			mac:      "FE:E1:BA:D0:6E:10",
			expected: "vio1",
		},
		{
			name:     "no match falls back",
			mac:      "00:00:00:00:00:01",
			expected: "vio0",
		},
		{
			name:     "empty address falls back",
			mac:      "",
			expected: "vio0",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nic.Resolve(tt.mac, interfaces, "vio0"))
		})
	}
}

func TestResolveNoInterfaces(t *testing.T) {
	assert.Equal(t, "vio0", nic.Resolve("fe:e1:ba:d0:6e:0f", nil, "vio0"))
}
