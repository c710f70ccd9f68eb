// Command uacertctl manages application instance certificates, trust
// lists, and security policy inspection for OPC UA servers and clients
// built on this module.
package main

import (
	"fmt"
	"os"

	"github.com/marmos91/uacore/cmd/uacertctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
