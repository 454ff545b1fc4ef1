package main

import "github.com/uar-project/uar/internal/cli"

func main() {
	cli.Execute()
}
