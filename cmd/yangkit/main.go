// SPDX-License-Identifier: MPL-2.0

// Command yangkit is the CLI for inspecting and validating yangkit
// context configuration: search directories, behavior options, and the
// configuration file itself.
package main

func main() {
	Execute()
}
