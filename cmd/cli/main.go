package main

import "github.com/corvid-systems/x64asm/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
