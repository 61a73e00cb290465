package main

import "hex/cmd"

func main() {
	cmd.Execute()
}
