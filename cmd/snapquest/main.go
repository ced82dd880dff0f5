package main

import (
	"snapquest/internal/cli"
)

func main() {
	cli.Execute()
}
