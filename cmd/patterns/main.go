package main

import "github.com/neolcr/patterns/internal/cli"

func main() {
	cli.Execute()
}
