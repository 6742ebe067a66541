package common_errors

import (
	"golang.org/x/xerrors"
)

var (
	ErrUnrecognizedSerdeFormat = xerrors.New("Unrecognized serde format")
	ErrWindowEndBeforeStart    = xerrors.New("window endMs should not be smaller than window startMs")
	ErrNegativeInactivityGap   = xerrors.New("inactivity gap cannot be negative")
	ErrNegativeGracePeriod     = xerrors.New("grace period cannot be negative")
	ErrIteratorOutOfBound      = xerrors.New("iterator is out of bound")
	ErrSnapshotNotFound        = xerrors.New("snapshot not found")
	ErrSnapshotSerdeNotSet     = xerrors.New("kv serde for snapshot is not set")
)

func IsIteratorOutOfBoundError(err error) bool {
	return err == ErrIteratorOutOfBound
}

func IsSnapshotNotFoundError(err error) bool {
	return err == ErrSnapshotNotFound
}
