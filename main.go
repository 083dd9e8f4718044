package main

import "github.com/color-game/palettes/cli"

func main() {
	cli.Execute()
}
