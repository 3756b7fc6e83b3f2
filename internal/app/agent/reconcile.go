// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package agent

import (
	"context"
	"log"

	"github.com/hashicorp/go-multierror"
)

// The reconcile phase is best-effort throughout: by this point the machine
// is in its best achievable configuration, and aborting on a service
// hiccup would discard completed work. Every task logs failures and
// returns nil.

// UnmountConfigDrive represents the UnmountConfigDrive task.
func UnmountConfigDrive(ctx context.Context, logger *log.Logger, r *Runtime) error {
	if err := r.Drive.Unmount(ctx); err != nil {
		logger.Printf("%s", err)
	}

	return nil
}

// DisableResolvd represents the DisableResolvd task: resolvd(8) manages
// resolv.conf dynamically and would overwrite the resolver configuration
// this agent just wrote, so it is stopped and permanently disabled.
func DisableResolvd(ctx context.Context, logger *log.Logger, r *Runtime) error {
	var result *multierror.Error

	result = multierror.Append(result, r.Services.Stop(ctx, "resolvd"))
	result = multierror.Append(result, r.Services.Disable(ctx, "resolvd"))

	if err := result.ErrorOrNil(); err != nil {
		logger.Printf("failed to disable resolvd: %s", err)
	}

	return nil
}

// ReapplyNetwork represents the ReapplyNetwork task: bring up the
// addresses and routes from the files written by the network phase.
func ReapplyNetwork(ctx context.Context, logger *log.Logger, r *Runtime) error {
	if err := r.Services.ReapplyNetwork(ctx, r.LinkName); err != nil {
		logger.Printf("failed to reapply network configuration: %s", err)
	}

	return nil
}

// RestartHostnameConsumers represents the RestartHostnameConsumers task:
// smtpd and syslogd cache the hostname at startup and must observe the new
// value.
func RestartHostnameConsumers(ctx context.Context, logger *log.Logger, r *Runtime) error {
	var result *multierror.Error

	for _, service := range []string{"smtpd", "syslogd"} {
		result = multierror.Append(result, r.Services.Restart(ctx, service))
	}

	if err := result.ErrorOrNil(); err != nil {
		logger.Printf("failed to restart services: %s", err)
	}

	return nil
}
