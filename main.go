package main

import "github.com/notargets/emissview/cmd"

func main() {
	cmd.Execute()
}
