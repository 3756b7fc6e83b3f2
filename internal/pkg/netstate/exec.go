// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package netstate

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/siderolabs/go-cmd/pkg/cmd"
)

// ExecQuerier reads live network state by invoking ifconfig(8) and
// route(8), the same utilities an operator would consult by hand.
type ExecQuerier struct{}

// Interfaces implements the Querier interface.
func (ExecQuerier) Interfaces(ctx context.Context) ([]Interface, error) {
	out, err := cmd.RunContext(ctx, "/sbin/ifconfig", "-A")
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate interfaces: %w", err)
	}

	return parseIfconfig(out), nil
}

// DefaultRoutes implements the Querier interface.
func (ExecQuerier) DefaultRoutes(ctx context.Context) ([]Route, error) {
	out, err := cmd.RunContext(ctx, "/sbin/route", "-n", "show", "-inet")
	if err != nil {
		return nil, fmt.Errorf("failed to read routing table: %w", err)
	}

	return parseRoutes(out), nil
}

// parseIfconfig walks ifconfig output: interface blocks start at column
// zero with "name: flags=...", while the lladdr and inet lines of the
// block are indented.
func parseIfconfig(out string) []Interface {
	var (
		interfaces []Interface
		current    *Interface
	)

	scanner := bufio.NewScanner(strings.NewReader(out))

	for scanner.Scan() {
		line := scanner.Text()

		if len(line) > 0 && line[0] != ' ' && line[0] != '\t' {
			name, _, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}

			interfaces = append(interfaces, Interface{Name: name})
			current = &interfaces[len(interfaces)-1]

			continue
		}

		if current == nil {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		switch fields[0] {
		case "lladdr":
			current.HardwareAddr = fields[1]
		case "inet":
			current.IPv4Address = fields[1]

			for i := 2; i < len(fields)-1; i++ {
				if fields[i] == "netmask" {
					current.IPv4Netmask = fields[i+1]
				}
			}
		}
	}

	return interfaces
}

// parseRoutes picks the "default" rows out of `route -n show` output; the
// gateway is the second column and the outbound interface the last.
func parseRoutes(out string) []Route {
	var routes []Route

	scanner := bufio.NewScanner(strings.NewReader(out))

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 || fields[0] != "default" {
			continue
		}

		routes = append(routes, Route{
			Destination: fields[0],
			Gateway:     fields[1],
			Interface:   fields[len(fields)-1],
		})
	}

	return routes
}
