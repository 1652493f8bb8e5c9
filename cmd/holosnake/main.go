package main

import (
	"github.com/battlesnakeio/holosnake/cmd/holosnake/commands"
)

func main() {
	commands.Execute()
}
