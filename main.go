// Package main is the entry point for the htmlreport CLI.
package main

import "htmlreport.dev/pkg/htmlreport/cmd"

func main() {
	cmd.Execute()
}
