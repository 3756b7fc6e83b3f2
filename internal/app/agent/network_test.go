// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//nolint: testpackage
package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeInterfaceLines(t *testing.T) {
	assert.Equal(t,
		[]string{"inet 203.0.113.8 0xffffff00", "inet6 2001:db8:1000:1164::8/64"},
		composeInterfaceLines("203.0.113.8", "0xffffff00", "2001:db8:1000:1164::8"),
	)

	// an address without an observed mask is not written
	assert.Equal(t,
		[]string{"inet6 2001:db8::8/64"},
		composeInterfaceLines("203.0.113.8", "", "2001:db8::8"),
	)

	assert.Empty(t, composeInterfaceLines("", "", ""))
}

func TestComposeGatewayLines(t *testing.T) {
	assert.Equal(t,
		[]string{"203.0.113.1", "fe80::1%vio0"},
		composeGatewayLines("203.0.113.1", "fe80::1", "vio0"),
	)

	// a routable gateway needs no zone qualifier
	assert.Equal(t,
		[]string{"2001:db8::1"},
		composeGatewayLines("", "2001:db8::1", "vio0"),
	)

	assert.Equal(t, []string{"203.0.113.1"}, composeGatewayLines("203.0.113.1", "", "vio0"))
	assert.Empty(t, composeGatewayLines("", "", "vio0"))
}

func TestIsLinkLocal(t *testing.T) {
	assert.True(t, isLinkLocal("fe80::1"))
	assert.True(t, isLinkLocal("FE80::1"))
	assert.False(t, isLinkLocal("2001:db8::1"))
	assert.False(t, isLinkLocal("203.0.113.1"))
}

func TestSearchDomain(t *testing.T) {
	dir := t.TempDir()
	myname := filepath.Join(dir, "myname")

	require.NoError(t, os.WriteFile(myname, []byte("server.example.com\n"), 0o644))
	assert.Equal(t, "example.com", searchDomain(myname))

	require.NoError(t, os.WriteFile(myname, []byte("standalone\n"), 0o644))
	assert.Empty(t, searchDomain(myname))

	assert.Empty(t, searchDomain(filepath.Join(dir, "missing")))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, dedupe(nil))
}
