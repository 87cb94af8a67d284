package main

import "wordfreq/internal/cli"

func main() {
	cli.Execute()
}
