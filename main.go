// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/ConradoAlmeida/cheatsheets/cmd/csvcheck"

func main() {
	cmd.Execute()
}
