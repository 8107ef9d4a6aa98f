package main

import "github.com/byteblox-io/btc-mnemonic-encryptor/internal/cli"

func main() {
	cli.Execute()
}
