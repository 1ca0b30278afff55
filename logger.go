// seehuhn.de/go/predraster - tiled prediction raster blocks
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package predraster

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard is a slog.Handler which drops all records.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discard{}))
}

// SetLogger sets the logger used by the package. By default nothing is
// logged; passing nil restores this.
//
// Absent and partial tiles are logged at debug level, band creation at
// info level.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the logger used by the package.
func Logger() *slog.Logger {
	return logger.Load()
}
