package main

import "github.com/guzus/thinthread/cmd"

func main() {
	cmd.Execute()
}
