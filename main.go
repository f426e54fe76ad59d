package main

import "logdiff/cmd"

func main() {
	cmd.Execute()
}
