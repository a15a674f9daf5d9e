package main

import "github.com/cemlab/gocem/cmd"

func main() {
	cmd.Execute()
}
