package main

import "github.com/autotestid/autotestid-cli/cmd"

func main() {
	cmd.Execute()
}
