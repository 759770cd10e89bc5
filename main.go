package main

import "github.com/frahmantamala/payments-gateway/cmd"

func main() {
	cmd.Execute()
}
