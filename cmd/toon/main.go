// Command toon is a JSON/TOON conversion CLI.
package main

import "github.com/cwbudde/go-toon/cmd/toon/cmd"

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Fail(err)
	}
}
