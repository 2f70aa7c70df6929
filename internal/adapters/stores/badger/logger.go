package badger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	badgerdb "github.com/dgraph-io/badger/v4"
)

var _ badgerdb.Logger = (*slogAdapter)(nil)

// slogAdapter routes Badger's printf-style logging into slog. Badger is
// chatty at INFO, so its info messages are logged at DEBUG.
type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Errorf(format string, args ...any) {
	a.log(slog.LevelError, format, args)
}

func (a *slogAdapter) Warningf(format string, args ...any) {
	a.log(slog.LevelWarn, format, args)
}

func (a *slogAdapter) Infof(format string, args ...any) {
	a.log(slog.LevelDebug, format, args)
}

func (a *slogAdapter) Debugf(format string, args ...any) {
	a.log(slog.LevelDebug, format, args)
}

func (a *slogAdapter) log(level slog.Level, format string, args []any) {
	ctx := context.Background()
	if !a.logger.Enabled(ctx, level) {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	a.logger.Log(ctx, level, msg, slog.String("component", "badger"))
}
