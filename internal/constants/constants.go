// Package constants provides centralized constant values used throughout textsign.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by textsign for organizing data.
const (
	// AppHome is the hidden directory name where textsign stores its data.
	// This directory is created in the user's home directory.
	AppHome = ".textsign"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// EnvPrefix is the prefix for environment variable overrides (TEXTSIGN_*).
	EnvPrefix = "TEXTSIGN"

	// HomeEnvVar overrides the location of AppHome.
	HomeEnvVar = "TEXTSIGN_HOME"
)

// Input handling.
const (
	// StdinSentinel is the input name that selects standard input.
	StdinSentinel = "-"
)

// Key sizes and signature lengths, in bytes.
const (
	// Blake3KeySize is the size of a BLAKE3 keyed-hash key.
	Blake3KeySize = 32

	// Blake3SignatureSize is the size of a BLAKE3 keyed-hash output.
	Blake3SignatureSize = 32

	// Ed25519SeedSize is the size of an Ed25519 signing key seed.
	Ed25519SeedSize = 32

	// Ed25519PublicKeySize is the size of an Ed25519 verifying key.
	Ed25519PublicKeySize = 32

	// Ed25519SignatureSize is the size of an Ed25519 signature.
	Ed25519SignatureSize = 64
)

// Defaults for text signing.
const (
	// DefaultFormat is the signing format used when none is configured.
	DefaultFormat = "blake3"

	// DefaultKeyDir is the directory generated keys are written to.
	DefaultKeyDir = "."

	// DefaultParallelism bounds how many inputs are signed at once.
	DefaultParallelism = 4

	// MaxParallelism is the upper bound accepted by config validation.
	MaxParallelism = 64
)

// File locking.
const (
	// LockTimeout is how long key generation waits for the directory lock.
	LockTimeout = 5 * time.Second

	// LockRetryInterval is the delay between lock attempts.
	LockRetryInterval = 50 * time.Millisecond
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size of a log file before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of rotated log files.
	LogMaxAgeDays = 28

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)
