// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/YakDriver/noticeplop/cmd"

func main() {
	cmd.Execute()
}
