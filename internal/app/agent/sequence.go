// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package agent

// BootSequence is the one sequence the agent knows: it runs at first boot
// and never again. The order is load-bearing; the resolver configuration
// reads the identity artifact back from disk, and the reconcile phase
// reapplies whatever the network phase wrote.
func BootSequence() []Phase {
	return []Phase{
		{
			Name:  "hostkeys",
			Tasks: []TaskFunc{EmitHostKeys},
		},
		{
			Name:  "metadata",
			Tasks: []TaskFunc{LoadMetadata},
		},
		{
			Name:  "link",
			Tasks: []TaskFunc{ResolveLink},
		},
		{
			Name:  "identity",
			Tasks: []TaskFunc{SetIdentity},
		},
		{
			Name: "network",
			Tasks: []TaskFunc{
				WriteInterfaceConfig,
				WriteRouteConfig,
				WriteResolverConfig,
			},
		},
		{
			Name:  "access",
			Tasks: []TaskFunc{ConfigureAccess},
		},
		{
			Name: "reconcile",
			Tasks: []TaskFunc{
				UnmountConfigDrive,
				DisableResolvd,
				ReapplyNetwork,
				RestartHostnameConsumers,
			},
		},
	}
}
