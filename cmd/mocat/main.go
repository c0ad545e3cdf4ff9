package main

import (
	"github.com/AnotherFoxGuy/mofilereader/cmd/mocat/cmd"
	"github.com/AnotherFoxGuy/mofilereader/pkg/di"
)

func main() {
	// Initialize dependency injection container
	container := di.NewContainer()

	// Inject dependencies into cmd package
	cmd.SetContainer(container)

	cmd.Execute()
}
