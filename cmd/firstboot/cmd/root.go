// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmprov/firstboot/internal/app/agent"
)

var config = agent.DefaultConfig()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "firstboot",
	Short: "First-boot provisioning agent for OpenBSD guests",
	Long: `firstboot reads the platform's config drive at first boot, resolves the
virtio network interface, and writes hostname, network, resolver, and
administrative access configuration before restarting the affected
services. It is meant to run exactly once per machine lifetime.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		log.SetPrefix("[firstboot] ")
		log.SetFlags(log.LstdFlags)

		return agent.Run(cobraCmd.Context(), agent.NewRuntime(config), agent.BootSequence())
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.Device, "device", config.Device, "The block device the config drive is attached at")
	rootCmd.PersistentFlags().StringVar(&config.MountPoint, "mount-point", config.MountPoint, "Where to mount the config drive")
	rootCmd.PersistentFlags().StringVar(&config.DefaultInterface, "interface", config.DefaultInterface, "Interface name used when no live interface matches the metadata hardware address")
}
