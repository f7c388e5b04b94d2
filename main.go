package main

import "github.com/Bike/scheme/cmd"

func main() {
	cmd.Execute()
}
