package main

import "github.com/CinderZhang/financialdatasets-docs/cmd"

func main() {
	cmd.Execute()
}
