package main

import "github.com/chronos-cli/chronos/cmd"

func main() {
	cmd.Execute()
}
