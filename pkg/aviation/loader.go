// pkg/aviation/loader.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/skybound/airway/pkg/aviation/aixm"
	"github.com/skybound/airway/pkg/util"
)

// New builds an EntityStore by loading the nine reference archives found
// in dir. A matching on-disk parse cache is consulted first (keyed by
// the archive directory's file names, sizes, and modification times);
// only a cache miss or WithoutDiskCache pays the cost of re-parsing the
// AIXM XML. New is the only part of this package that performs I/O or
// can fail: every query made against the returned store afterward is a
// pure, total function.
func New(dir string, opts ...Option) (*EntityStore, error) {
	cfg := newConfig(opts)

	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArchiveDirNotFound, dir, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s: not a directory", ErrArchiveDirNotFound, dir)
	}

	cacheName, err := archiveCacheKey(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArchiveUnreadable, dir, err)
	}

	var snap storeSnapshot
	loaded := false

	if !cfg.disableDiskCache {
		if _, err := util.CacheRetrieveObject(cacheName, &snap); err == nil {
			loaded = true
			cfg.logger.Debugf("%s: reference data loaded from parse cache", dir)
		}
	}

	if !loaded {
		archive, err := aixm.Load(dir)
		if err != nil {
			return nil, wrapLoadError(err)
		}
		snap, err = convertArchive(archive)
		if err != nil {
			return nil, err
		}
		if !cfg.disableDiskCache {
			if err := util.CacheStoreObject(cacheName, snap); err != nil {
				cfg.logger.Warnf("%s: failed to write parse cache: %v", cacheName, err)
			}
		}
	}

	store := newEmptyStore()
	store.log = cfg.logger
	store.pointCacheSize = cfg.pointCacheSize
	store.routeCacheSize = cfg.routeCacheSize
	populate(store, snap)

	return store, nil
}

// wrapLoadError classifies an aixm.Load failure per §7's Configuration/
// Data split: a missing archive file surfaces as ErrRequiredArchiveMissing,
// a malformed XML document as ErrMalformedAIXM, anything else (permission
// errors, truncated zip central directories, ...) as ErrArchiveUnreadable.
func wrapLoadError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && os.IsNotExist(pathErr) {
		return fmt.Errorf("%w: %v", ErrRequiredArchiveMissing, err)
	}

	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("%w: %v", ErrMalformedAIXM, err)
	}

	return fmt.Errorf("%w: %v", ErrArchiveUnreadable, err)
}

// archiveCacheKey derives a stable cache file name from the contents of
// dir: every regular file's name, size, and modification time, hashed
// with util.HashString64. Any change to the archive set -- an update,
// an added or removed file -- changes the key and forces a reparse.
func archiveCacheKey(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var fingerprint string
	for _, name := range names {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		fingerprint += fmt.Sprintf("%s:%d:%d|", name, info.Size(), info.ModTime().UnixNano())
	}

	return fmt.Sprintf("aixm-%x.msgpack", util.HashString64(fingerprint)), nil
}
