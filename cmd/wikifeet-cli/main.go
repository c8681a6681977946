package main

import (
	"wikifeet-go/cmd/wikifeet-cli/commands"
	"wikifeet-go/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
