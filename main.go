package main

import "chest-sorter/cmd"

func main() {
	cmd.Execute()
}
