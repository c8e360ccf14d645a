package main

import "github.com/shopdash/shopdash/cmd"

func main() {
	cmd.Execute()
}
