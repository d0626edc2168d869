package main

import "github.com/inovacc/ghexplorer/cmd"

func main() {
	cmd.Execute()
}
