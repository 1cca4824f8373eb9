package main

import "github.com/ardanlabs/skywallet/app/wallet/cli/cmd"

func main() {
	cmd.Execute()
}
