package main

import "dkbudget/cmd"

func main() {
	cmd.Execute()
}
