package main

import "github.com/caothongdev/portfolio/cmd/portfolio/cmd"

func main() {
	cmd.Execute()
}
