// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmprov/firstboot/internal/pkg/metadata"
	"github.com/vmprov/firstboot/internal/pkg/nic"
	"github.com/vmprov/firstboot/internal/pkg/sysfile"
	"github.com/vmprov/firstboot/pkg/constants"
)

// ErrNoNetworkData means the config drive carries no network-topology
// document; the pipeline cannot resolve an interface without one.
var ErrNoNetworkData = errors.New("network-topology document not found on config drive")

// EmitHostKeys represents the EmitHostKeys task: print the host's public
// SSH identity keys between fixed delimiters for the platform's console
// scraper. This is a documented contract, not incidental logging, so it
// goes to stdout rather than the logger.
func EmitHostKeys(ctx context.Context, logger *log.Logger, r *Runtime) error {
	paths, err := filepath.Glob(r.Config.HostKeyGlob)
	if err != nil || len(paths) == 0 {
		logger.Printf("no SSH host keys found, skipping console banner")

		return nil
	}

	fmt.Println(constants.HostKeyBannerBegin)

	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		fmt.Print(strings.TrimRight(string(b), "\n") + "\n")
	}

	fmt.Println(constants.HostKeyBannerEnd)

	return nil
}

// LoadMetadata represents the LoadMetadata task: mount the config drive
// and parse both metadata documents. The volume stays mounted; the
// reconcile phase unmounts it.
func LoadMetadata(ctx context.Context, logger *log.Logger, r *Runtime) error {
	if err := r.Drive.Mount(ctx); err != nil {
		return err
	}

	b, err := r.Drive.ReadFile(r.Config.NetworkDataPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoNetworkData, err)
	}

	if r.NetworkData, err = metadata.ParseNetworkData(b); err != nil {
		return err
	}

	b, err = r.Drive.ReadFile(r.Config.UserDataPath)
	if err != nil {
		logger.Printf("no user data on config drive, hostname and SSH keys will be skipped: %s", err)

		r.UserData = &metadata.UserData{}

		return nil
	}

	if r.UserData, err = metadata.ParseUserData(b); err != nil {
		// The tag was recognized but the document would not decode;
		// treat the key list as empty rather than aborting.
		logger.Printf("user data is malformed, ignoring its key list: %s", err)
	}

	return nil
}

// ResolveLink represents the ResolveLink task: pick the interface whose
// hardware address matches the network document, falling back to the
// platform's default name. It caches the live interface state for the
// network phase, so the state observed here is the state written later.
func ResolveLink(ctx context.Context, logger *log.Logger, r *Runtime) error {
	interfaces, err := r.Net.Interfaces(ctx)
	if err != nil {
		logger.Printf("failed to enumerate interfaces, falling back to %s: %s", r.Config.DefaultInterface, err)
	}

	r.Interfaces = interfaces
	r.LinkName = nic.Resolve(r.NetworkData.HardwareAddr(), interfaces, r.Config.DefaultInterface)

	logger.Printf("resolved interface %s", r.LinkName)

	return nil
}

// SetIdentity represents the SetIdentity task: write the persistent
// hostname record and apply it to the running kernel. The value is written
// verbatim; a malformed name surfaces later as DNS misbehavior, not here.
func SetIdentity(ctx context.Context, logger *log.Logger, r *Runtime) error {
	fqdn := r.UserData.FQDN
	if fqdn == "" {
		logger.Printf("no hostname in metadata, keeping the image hostname")

		return nil
	}

	if err := sysfile.Overwrite(r.Config.MynamePath, []byte(fqdn+"\n"), 0o644); err != nil {
		return err
	}

	if err := r.Services.SetHostname(ctx, fqdn); err != nil {
		return fmt.Errorf("failed to set live hostname: %w", err)
	}

	logger.Printf("hostname set to %s", fqdn)

	return nil
}
