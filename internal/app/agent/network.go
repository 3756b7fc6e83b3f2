// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package agent

import (
	"context"
	"fmt"
	"log"
	"net/netip"
	"os"
	"strings"

	"github.com/vmprov/firstboot/internal/pkg/netstate"
	"github.com/vmprov/firstboot/internal/pkg/sysfile"
	"github.com/vmprov/firstboot/pkg/constants"
)

// WriteInterfaceConfig represents the WriteInterfaceConfig task: compose
// the per-interface configuration from the live IPv4 state and the
// metadata IPv6 address. The file is written even when both families are
// absent, because netstart(8) later reapplies configuration from it.
func WriteInterfaceConfig(ctx context.Context, logger *log.Logger, r *Runtime) error {
	var live netstate.Interface

	for _, iface := range r.Interfaces {
		if iface.Name == r.LinkName {
			live = iface

			break
		}
	}

	lines := composeInterfaceLines(live.IPv4Address, live.IPv4Netmask, r.NetworkData.IPv6Address())
	if len(lines) == 0 {
		logger.Printf("no address configuration for %s, writing empty interface config", r.LinkName)
	}

	return sysfile.Overwrite(r.Config.InterfaceConfigPath(r.LinkName), joinLines(lines), 0o640)
}

// WriteRouteConfig represents the WriteRouteConfig task: derive the IPv4
// default gateway from the live routing table and the IPv6 gateway from
// metadata. No gateways means no artifact.
func WriteRouteConfig(ctx context.Context, logger *log.Logger, r *Runtime) error {
	var gateway4 string

	routes, err := r.Net.DefaultRoutes(ctx)
	if err != nil {
		logger.Printf("failed to read routing table, no IPv4 gateway will be configured: %s", err)
	}

	for _, route := range routes {
		if route.Interface == r.LinkName {
			gateway4 = route.Gateway

			break
		}
	}

	lines := composeGatewayLines(gateway4, r.NetworkData.IPv6Gateway(), r.LinkName)
	if len(lines) == 0 {
		logger.Printf("no default gateways derived, skipping route config")

		return nil
	}

	return sysfile.Overwrite(r.Config.MygatePath, joinLines(lines), 0o644)
}

// WriteResolverConfig represents the WriteResolverConfig task: nameservers
// from metadata, search domain from the hostname record already on disk.
// Without any nameserver the resolver configuration is left untouched.
func WriteResolverConfig(ctx context.Context, logger *log.Logger, r *Runtime) error {
	servers := dedupe(r.NetworkData.DNSServers())
	if len(servers) == 0 {
		logger.Printf("no DNS servers in metadata, leaving resolver config untouched")

		return nil
	}

	domain := searchDomain(r.Config.MynamePath)

	return sysfile.Overwrite(r.Config.ResolvConfPath, []byte(composeResolvConf(domain, servers)), 0o644)
}

func composeInterfaceLines(ipv4Addr, ipv4Mask, ipv6Addr string) []string {
	var lines []string

	if ipv4Addr != "" && ipv4Mask != "" {
		lines = append(lines, fmt.Sprintf("inet %s %s", ipv4Addr, ipv4Mask))
	}

	if ipv6Addr != "" {
		// The prefix length is a platform constant, not derived from
		// metadata.
		lines = append(lines, fmt.Sprintf("inet6 %s/%d", ipv6Addr, constants.IPv6PrefixLength))
	}

	return lines
}

func composeGatewayLines(gateway4, gateway6, iface string) []string {
	var lines []string

	if gateway4 != "" {
		lines = append(lines, gateway4)
	}

	if gateway6 != "" {
		if isLinkLocal(gateway6) {
			// A link-local gateway is only meaningful per interface.
			gateway6 += "%" + iface
		}

		lines = append(lines, gateway6)
	}

	return lines
}

func composeResolvConf(domain string, servers []string) string {
	var b strings.Builder

	if domain != "" {
		fmt.Fprintf(&b, "search %s\n", domain)
	}

	for _, server := range servers {
		fmt.Fprintf(&b, "nameserver %s\n", server)
	}

	// Local files win over DNS for host lookups.
	b.WriteString("lookup file bind\n")

	return b.String()
}

// searchDomain reads the hostname record back from disk and drops its
// first label. A missing record or a bare hostname yields no domain.
func searchDomain(mynamePath string) string {
	b, err := os.ReadFile(mynamePath)
	if err != nil {
		return ""
	}

	hostname := strings.TrimSpace(string(b))

	_, domain, ok := strings.Cut(hostname, ".")
	if !ok {
		return ""
	}

	return domain
}

func isLinkLocal(addr string) bool {
	if ip, err := netip.ParseAddr(addr); err == nil {
		return ip.Is6() && ip.IsLinkLocalUnicast()
	}

	return strings.HasPrefix(strings.ToLower(addr), "fe80:")
}

// dedupe drops repeated entries, keeping first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))

	var out []string

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}

		out = append(out, v)
	}

	return out
}

func joinLines(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}

	return []byte(strings.Join(lines, "\n") + "\n")
}
