// Package commands defines the enigma CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encrypt        Encrypt a message (alias: decrypt)
//   - rotors         List rotor wirings, notches and the reflector
//   - sheet save     Store named settings in the sealed key-sheet book
//   - sheet list     List stored key sheets
//   - sheet show     Print one key sheet
//   - sheet delete   Remove a key sheet
//   - config init    Write a defaults file
//
// # Implementation
//
// The root command loads the YAML defaults file and builds the dependency
// graph (key-sheet store, services, logger) before any subcommand runs, so
// handlers share one app context.
package commands
