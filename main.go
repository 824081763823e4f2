package main

import pythrow "github.com/pythrow/pythrow/cmd/pythrow"

func main() {
	pythrow.Execute()
}
