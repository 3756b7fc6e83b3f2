// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package metadata

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/vmprov/firstboot/pkg/constants"
)

// UserData holds the subset of the user-supplied configuration document the
// agent consumes. SSHAuthorizedKeys is populated only for documents tagged
// as cloud-config; anything else is opaque free-form text and yields no
// keys, regardless of content.
type UserData struct {
	FQDN              string
	CloudConfig       bool
	SSHAuthorizedKeys []string
}

type cloudConfig struct {
	FQDN              string   `yaml:"fqdn"`
	Hostname          string   `yaml:"hostname"`
	SSHAuthorizedKeys []string `yaml:"ssh_authorized_keys"`
}

// ParseUserData extracts the consumed fields from the user document. The
// FQDN comes from a line-oriented scan that works on any document; the key
// list only from a well-formed cloud-config document. A tagged document
// with malformed YAML returns a usable UserData (tag recognized, no keys)
// along with the decode error for the caller to log.
func ParseUserData(b []byte) (*UserData, error) {
	userData := &UserData{
		FQDN:        scanFQDN(b),
		CloudConfig: IsCloudConfig(b),
	}

	if !userData.CloudConfig {
		return userData, nil
	}

	var config cloudConfig

	if err := yaml.Unmarshal(b, &config); err != nil {
		return userData, fmt.Errorf("failed to decode cloud-config user data: %w", err)
	}

	userData.SSHAuthorizedKeys = config.SSHAuthorizedKeys

	if config.FQDN != "" {
		userData.FQDN = config.FQDN
	} else if userData.FQDN == "" {
		userData.FQDN = config.Hostname
	}

	return userData, nil
}

// IsCloudConfig reports whether the document carries the cloud-config
// format tag as its first non-blank line.
func IsCloudConfig(b []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(b))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		return line == constants.CloudConfigHeader
	}

	return false
}

// scanFQDN picks the first `fqdn:` (preferred) or `hostname:` value out of
// the document without assuming any overall structure.
func scanFQDN(b []byte) string {
	var hostname string

	scanner := bufio.NewScanner(bytes.NewReader(b))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if value == "" {
			continue
		}

		switch key {
		case "fqdn":
			return value
		case "hostname":
			if hostname == "" {
				hostname = value
			}
		}
	}

	return hostname
}
