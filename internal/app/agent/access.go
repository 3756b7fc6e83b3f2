// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package agent

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vmprov/firstboot/internal/pkg/sysfile"
)

// ConfigureAccess represents the ConfigureAccess task: install the
// authorized SSH keys for the administrative account and grant it
// privilege elevation. A user document that is not cloud-config is opaque
// text and produces no side effects at all; that is the expected state for
// instances created without user-supplied configuration.
//
// Keys are appended so that keys baked into the image survive. The append
// is the one step that is not idempotent: re-running the agent duplicates
// key lines.
func ConfigureAccess(ctx context.Context, logger *log.Logger, r *Runtime) error {
	if !r.UserData.CloudConfig {
		return nil
	}

	if keys := r.UserData.SSHAuthorizedKeys; len(keys) > 0 {
		if err := installAuthorizedKeys(logger, r.Config, keys); err != nil {
			return err
		}

		logger.Printf("installed %d authorized key(s) for %s", len(keys), r.Config.AdminUser)
	}

	rule := fmt.Sprintf("permit nopass %s as root\n", r.Config.AdminUser)

	if err := sysfile.Overwrite(r.Config.DoasConfPath, []byte(rule), 0o600); err != nil {
		return err
	}

	return nil
}

func installAuthorizedKeys(logger *log.Logger, cfg Config, keys []string) error {
	dir := filepath.Dir(cfg.AuthorizedKeysPath)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if err := sysfile.Append(cfg.AuthorizedKeysPath, []byte(strings.Join(keys, "\n")+"\n"), 0o600); err != nil {
		return err
	}

	chownToUser(logger, cfg.AdminUser, dir, cfg.AuthorizedKeysPath)

	return nil
}

// chownToUser hands the key material to the admin account; sshd refuses
// keys owned by the wrong user. Failure is logged, not fatal, since the
// account may not exist in unusual images.
func chownToUser(logger *log.Logger, username string, paths ...string) {
	u, err := user.Lookup(username)
	if err != nil {
		logger.Printf("failed to look up user %s: %s", username, err)

		return
	}

	uid, _ := strconv.Atoi(u.Uid)
	gid, _ := strconv.Atoi(u.Gid)

	for _, path := range paths {
		if err := os.Chown(path, uid, gid); err != nil {
			logger.Printf("failed to chown %s: %s", path, err)
		}
	}
}
