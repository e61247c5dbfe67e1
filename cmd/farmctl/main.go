package main

import "farmdash/cmd/farmctl/root"

func main() { root.Execute() }
