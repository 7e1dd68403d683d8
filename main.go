package main

import "github.com/chriserin/xt/cmd"

func main() {
	cmd.Execute()
}
