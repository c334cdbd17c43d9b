package main

import "github.com/mcoot/blackjack/internal/cli"

func main() {
	cli.Execute()
}
