package main

import "github.com/hashcalc-project/hashcalc/internal/cli"

func main() {
	cli.Execute()
}
