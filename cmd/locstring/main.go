package main

import "locstring/internal/cli"

func main() {
	cli.Execute()
}
