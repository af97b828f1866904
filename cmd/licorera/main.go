package main

import "github.com/lalicorera/storefront/cmd/licorera/cmd"

func main() {
	cmd.Execute()
}
