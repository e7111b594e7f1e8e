package main

import "supercharge/cmd/sc/root"

func main() {
	root.Execute()
}
