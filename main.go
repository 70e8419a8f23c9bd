package main

import "mocha/cmd"

func main() {
	cmd.Execute()
}
