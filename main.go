package main

import (
	cmd "github.com/chatapp/chatsummary/cmd/chatsummary"
)

func main() {
	cmd.Execute()
}
