package main

import "github.com/johnmpetty/progress/cmd"

func main() {
	cmd.Execute()
}
