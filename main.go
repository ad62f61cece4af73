package main

import "github.com/OliveIsAWord/picross/cmd"

func main() {
	cmd.Execute()
}
