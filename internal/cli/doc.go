// Package cli provides the reader command-line client: command setup,
// configuration through cobra flags and viper, and the interactive reading
// loop built on package reader.
package cli
