package constants

// Log file names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.textsign/logs/textsign.log
	CLILogFileName = "textsign.log"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global configuration file.
	GlobalConfigName = "config.yaml"
)

// Generated key file names.
const (
	// Blake3KeyFileName holds the symmetric BLAKE3 key.
	Blake3KeyFileName = "blake3.txt"

	// Ed25519SecretKeyFileName holds the 32-byte Ed25519 seed.
	Ed25519SecretKeyFileName = "ed25519.sk"

	// Ed25519PublicKeyFileName holds the 32-byte Ed25519 public key.
	Ed25519PublicKeyFileName = "ed25519.pk"

	// LockFileName guards a key directory while keys are written.
	LockFileName = ".textsign.lock"
)
