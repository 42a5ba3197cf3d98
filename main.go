package main

import "github.com/ODNZSL/nzsl-dictionary-scripts/cmd"

func main() {
	cmd.Execute()
}
