package main

import "github.com/gomlir/gomlir/internal/cli"

func main() {
	cli.Execute()
}
