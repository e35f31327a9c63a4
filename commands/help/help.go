// Package help provides the help command.
package help

import (
	"fmt"
	"os"

	"github.com/sardusmatt/ecs-metadata/commands"
)

func init() {
	commands.Register("help", cmd{})
}

type cmd struct{}

func (cmd) Summary() string {
	return "Prints help for a command."
}

func (cmd) Usage() string {
	return "usage: ecs-metadata help <command>"
}

func (cmd) Execute(arguments map[string]interface{}) bool {
	command := arguments["<command>"].(string)
	provider := commands.Lookup(command)
	if provider == nil {
		fmt.Println("Unknown command: ", command)
		os.Exit(1)
	}
	fmt.Print(provider.Usage())
	return true
}
