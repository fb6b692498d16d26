package main

import "github.com/bryandebourbon/musicreader/cmd"

func main() {
	cmd.Execute()
}
