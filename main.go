package main

import "github.com/itsmostafa/bindery/cmd"

func main() {
	cmd.Execute()
}
