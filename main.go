package main

import "github.com/rskv-p/kata/cmd"

func main() {
	cmd.Execute()
}
