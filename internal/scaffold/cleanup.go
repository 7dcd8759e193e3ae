package scaffold

import (
	"context"
	"os"

	"github.com/pkgstrap/pkgstrap/internal/logging"
)

// KeepSelfEnv, when set to any non-empty value, disables the one-shot
// self-deletion after a successful bootstrap.
const KeepSelfEnv = "PKGSTRAP_KEEP_SELF"

// SelfDelete removes the running binary and the optional template
// directory after a successful bootstrap. pkgstrap is a one-shot tool;
// once the project exists there is nothing left for it to do. The
// removal is best effort and idempotent, and skipped entirely when
// KeepSelfEnv is set.
func SelfDelete(ctx context.Context, log logging.Logger, templateDir string) {
	if log == nil {
		log = logging.NopLogger()
	}
	if os.Getenv(KeepSelfEnv) != "" {
		log.Debug(ctx, "self-delete disabled", "env", KeepSelfEnv)
		return
	}
	if templateDir != "" {
		if err := os.RemoveAll(templateDir); err != nil {
			log.Warn(ctx, err, "could not remove template directory", "dir", templateDir)
		}
	}
	exe, err := os.Executable()
	if err != nil {
		log.Warn(ctx, err, "could not locate own binary")
		return
	}
	if err := os.Remove(exe); err != nil && !os.IsNotExist(err) {
		log.Warn(ctx, err, "could not remove own binary", "path", exe)
		return
	}
	log.Info(ctx, "removed bootstrap binary", "path", exe)
}
