package main

import "emojimenu/internal/cli"

func main() {
	cli.Execute()
}
