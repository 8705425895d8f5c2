package main

import "pinfile/internal/cli"

func main() {
	cli.Execute()
}
