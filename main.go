package main

import (
	"os"
)

const appName = "sdk-exports"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		newPrinter(os.Stdout, os.Stderr).Error(err)
		os.Exit(1)
	}
}
