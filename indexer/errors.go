package indexer

import "errors"

var (
	// ErrInvalidBatchSize rejects non-positive batch sizes before any work runs.
	ErrInvalidBatchSize = errors.New("batch size must be at least 1")

	// ErrSourceRead marks a source document that is missing or unparseable.
	ErrSourceRead = errors.New("source read failed")

	// ErrAssemblyInconsistency signals an upstream bug: the assembled sections
	// do not match what the batch plan promised. Never recoverable.
	ErrAssemblyInconsistency = errors.New("index assembly inconsistency")

	// ErrPersistence marks a failure writing the index to the output directory.
	ErrPersistence = errors.New("index persistence failed")
)
