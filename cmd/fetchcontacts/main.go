package main

import "github.com/Joshrizika/Chat-Pilot/internal/cli"

func main() {
	cli.Execute()
}
