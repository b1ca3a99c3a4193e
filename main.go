// main.go
package main

import (
	"os"

	"customer-feedback/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
