// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package services wraps the host's service-control and network-apply
// primitives behind an interface the reconcile phase drives.
package services

import (
	"context"

	"github.com/siderolabs/go-cmd/pkg/cmd"
)

// Runner controls system services and reapplies host configuration.
type Runner interface {
	Stop(ctx context.Context, service string) error
	Disable(ctx context.Context, service string) error
	Restart(ctx context.Context, service string) error
	ReapplyNetwork(ctx context.Context, iface string) error
	SetHostname(ctx context.Context, hostname string) error
}

// RcctlRunner drives services through rcctl(8) and reapplies network
// configuration through netstart(8).
type RcctlRunner struct{}

// Stop implements the Runner interface.
func (RcctlRunner) Stop(ctx context.Context, service string) error {
	_, err := cmd.RunContext(ctx, "/usr/sbin/rcctl", "stop", service)

	return err
}

// Disable implements the Runner interface.
func (RcctlRunner) Disable(ctx context.Context, service string) error {
	_, err := cmd.RunContext(ctx, "/usr/sbin/rcctl", "disable", service)

	return err
}

// Restart implements the Runner interface.
func (RcctlRunner) Restart(ctx context.Context, service string) error {
	_, err := cmd.RunContext(ctx, "/usr/sbin/rcctl", "restart", service)

	return err
}

// ReapplyNetwork implements the Runner interface. Running netstart on the
// interface brings up the addresses and routes from the files the agent
// wrote; connectivity may drop for a moment.
func (RcctlRunner) ReapplyNetwork(ctx context.Context, iface string) error {
	_, err := cmd.RunContext(ctx, "/bin/sh", "/etc/netstart", iface)

	return err
}

// SetHostname implements the Runner interface, applying the hostname to
// the running kernel (the persistent record is written separately).
func (RcctlRunner) SetHostname(ctx context.Context, hostname string) error {
	_, err := cmd.RunContext(ctx, "/bin/hostname", hostname)

	return err
}
