package main

import "github.com/douhashi/dday-labeler/cmd"

func main() {
	cmd.Execute()
}
