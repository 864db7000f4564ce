package main

import "github.com/pale-fox/exline/cmd"

func main() {
	cmd.Execute()
}
