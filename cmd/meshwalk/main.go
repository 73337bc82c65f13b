// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/meshwalk/cmd/meshwalk/cmd"

func main() {
	cmd.Execute()
}
