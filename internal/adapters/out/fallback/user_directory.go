package fallback

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/ports"
)

// UserDirectory delegates to the remote user directory and falls back to the
// in-memory directory on any remote error. Because the local directory's
// existence check is permissive, a user-database outage degrades to accepting
// orders rather than rejecting every customer.
type UserDirectory struct {
	remote ports.UserDirectory
	local  ports.UserDirectory
	logger *slog.Logger
}

// NewUserDirectory wraps a remote user directory with an in-memory fallback.
func NewUserDirectory(remote, local ports.UserDirectory, logger *slog.Logger) *UserDirectory {
	return &UserDirectory{
		remote: remote,
		local:  local,
		logger: logger.With("component", "user_directory"),
	}
}

// Exists delegates to the remote directory, falling back on error.
func (d *UserDirectory) Exists(ctx context.Context, userID string) (bool, error) {
	exists, err := d.remote.Exists(ctx, userID)
	if err != nil {
		d.warn(ctx, "Exists", err)
		return d.local.Exists(ctx, userID)
	}
	return exists, nil
}

// FindByHash delegates to the remote directory, falling back on error.
func (d *UserDirectory) FindByHash(ctx context.Context, hash string) (*ports.User, error) {
	user, err := d.remote.FindByHash(ctx, hash)
	if err != nil {
		d.warn(ctx, "FindByHash", err)
		return d.local.FindByHash(ctx, hash)
	}
	return user, nil
}

// Create delegates to the remote directory, falling back on error.
func (d *UserDirectory) Create(ctx context.Context, user ports.User) error {
	if err := d.remote.Create(ctx, user); err != nil {
		d.warn(ctx, "Create", err)
		return d.local.Create(ctx, user)
	}
	return nil
}

func (d *UserDirectory) warn(ctx context.Context, op string, err error) {
	d.logger.WarnContext(ctx, "Remote user directory failed, using local fallback",
		"operation", op,
		"error", err,
	)
}
