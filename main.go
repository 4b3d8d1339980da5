package main

import "github.com/they4kman/amazeing/cmd"

func main() {
	cmd.Execute()
}
