package main

import "github.com/mazradwan/onestop/pkg/cmd"

func main() {
	cmd.Execute()
}
