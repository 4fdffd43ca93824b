package main

import "github.com/shiftclock/shiftclock/cmd"

func main() {
	cmd.Execute()
}
