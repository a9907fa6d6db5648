package main

import "codehere/cmd/codehere/cmd"

func main() {
	cmd.Execute()
}
