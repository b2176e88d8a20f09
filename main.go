package main

import "phrase-agent/cmd"

func main() {
	cmd.Execute()
}
