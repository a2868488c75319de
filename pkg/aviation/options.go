// pkg/aviation/options.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "github.com/skybound/airway/pkg/log"

// config collects New's optional settings.
type config struct {
	logger           *log.Logger
	disableDiskCache bool
	pointCacheSize   int
	routeCacheSize   int
}

// Option configures New. The zero value of config is always valid; each
// Option only overrides one field.
type Option func(*config)

// WithLogger supplies the logger New and the resulting EntityStore log
// through. The default is a freshly constructed info-level logger.
func WithLogger(lg *log.Logger) Option {
	return func(c *config) { c.logger = lg }
}

// WithoutDiskCache disables the on-disk parsed-archive cache, forcing
// every New call to re-parse the AIXM archives from scratch.
func WithoutDiskCache() Option {
	return func(c *config) { c.disableDiskCache = true }
}

// WithPointCacheSize overrides the PointResolver's lookup cache capacity.
func WithPointCacheSize(n int) Option {
	return func(c *config) { c.pointCacheSize = n }
}

// WithRouteCacheSize overrides the RouteResolver's lookup cache capacity.
func WithRouteCacheSize(n int) Option {
	return func(c *config) { c.routeCacheSize = n }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(false, "info", "")
	}
	return c
}
