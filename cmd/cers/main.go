package main

import "github.com/MikeSquared-Agency/cers/internal/cli"

func main() {
	cli.Execute()
}
