// SPDX-License-Identifier: MPL-2.0

// Command ng-packagr transpiles and packages Angular libraries into the
// Angular Package Format from a single configuration file.
package main

import (
	cmd "ng-packagr/cmd/ngpackagr"
)

func main() {
	cmd.Execute()
}
