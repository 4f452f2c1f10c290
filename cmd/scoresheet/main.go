package main

import "github.com/mcoot/scoresheet/internal/cli"

func main() {
	cli.Execute()
}
