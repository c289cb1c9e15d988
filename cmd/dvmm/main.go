package main

import "github.com/a2-coder/dvmm/internal/cli"

func main() {
	cli.Execute()
}
