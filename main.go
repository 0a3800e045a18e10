package main

import "github.com/jobdeck/jobdeck/cmd"

func main() {
	cmd.Execute()
}
