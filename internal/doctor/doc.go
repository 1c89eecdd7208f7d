// Package doctor runs diagnostic checks over the vin installation: the
// config file, the prefix table used for generation, the checksum engine
// itself and the terminal.
//
// Checks implement [Check]; those that can repair what they find also
// implement [Fixer]. A [Runner] executes checks in registration order and
// returns a [Report].
package doctor
