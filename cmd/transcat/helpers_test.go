// SPDX-License-Identifier: MIT

package main

import "log/slog"

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }
