package main

import "github.com/max99x/drawtime/cmd/drawtime/cmd"

func main() {
	cmd.Execute()
}
