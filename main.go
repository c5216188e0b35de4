package main

import "corpus-builder/cmd"

func main() {
	cmd.Execute()
}
