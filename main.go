// Package main hosts the main function for ecs-metadata.
package main

import (
	"github.com/sardusmatt/ecs-metadata/commands"

	_ "github.com/sardusmatt/ecs-metadata/commands/help"
	_ "github.com/sardusmatt/ecs-metadata/commands/inspect"
	_ "github.com/sardusmatt/ecs-metadata/commands/version"
)

func main() {
	commands.Run(nil)
}
