// Command slottable renders and serves tables described in YAML.
//
//	slottable render employees.yaml --format text
//	slottable render employees.yaml --page > employees.html
//	slottable serve employees.yaml --addr :8080
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
