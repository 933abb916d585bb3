package main

import "notekeeper/cmd/client/cmd"

func main() {
	cmd.Execute()
}
