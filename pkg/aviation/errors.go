// pkg/aviation/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "errors"

// Configuration and Data errors are fatal at store construction time.
// Resolution misses and unresolved ambiguity are not represented as
// errors at all: they are logged at warning level and the pipeline
// degrades gracefully (see pkg/aviation/enrich.go).
var (
	// Configuration errors: the archive directory or one of its
	// required members could not be found or read.
	ErrArchiveDirNotFound     = errors.New("aviation: archive directory not found")
	ErrRequiredArchiveMissing = errors.New("aviation: required archive missing")
	ErrArchiveUnreadable      = errors.New("aviation: archive could not be read")

	// Data errors: the archive was read but its contents could not be
	// interpreted as valid AIXM.
	ErrMalformedAIXM           = errors.New("aviation: malformed AIXM XML")
	ErrMalformedCoordinate     = errors.New("aviation: malformed coordinate string")
	ErrUnknownEntityKind       = errors.New("aviation: unknown entity kind")
	ErrMalformedCrossReference = errors.New("aviation: cross-reference href is not a urn:uuid")
)
