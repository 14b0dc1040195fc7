package main

import "github.com/abhisek/leafiz/cmd"

func main() {
	cmd.Execute()
}
