// ./main.go
package main

import (
	"github.com/xkilldash9x/smallworld/cmd"
)

// main is the entry point for the smallworld CLI.
func main() {
	cmd.Execute()
}
