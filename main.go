package main

import "github.com/lixenwraith/sector-atlas/cmd"

func main() {
	cmd.Execute()
}
