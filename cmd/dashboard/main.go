package main

import "github.com/dmitrymomot/dashboard/cmd/dashboard/cmd"

func main() {
	cmd.Execute()
}
