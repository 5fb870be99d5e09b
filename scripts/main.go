package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pedroramon/hotel-backend/scripts/internal"
)

// Command represents a script that can be run
type Command struct {
	Name        string
	Description string
	Run         func() error
}

var commands = []Command{
	{
		Name:        "seed-reference-data",
		Description: "Create room types and room statuses from a YAML or JSON file",
		Run:         internal.SeedReferenceData,
	},
}

func main() {
	var (
		listCommands bool
		cmdName      string
		filePath     string
	)

	flag.BoolVar(&listCommands, "list", false, "List all available commands")
	flag.StringVar(&cmdName, "cmd", "", "Command to run")
	flag.StringVar(&filePath, "file", "", "Path to the input file")

	flag.Parse()

	if listCommands {
		fmt.Println("Available commands:")
		for _, cmd := range commands {
			fmt.Printf("  %-20s %s\n", cmd.Name, cmd.Description)
		}
		return
	}

	if cmdName == "" {
		log.Fatal("Please specify a command to run using -cmd flag. Use -list to see available commands.")
	}

	if filePath != "" {
		os.Setenv("FILE_PATH", filePath)
	}

	for _, cmd := range commands {
		if cmd.Name == cmdName {
			if err := cmd.Run(); err != nil {
				log.Fatalf("Error running command %s: %v", cmdName, err)
			}
			return
		}
	}

	log.Fatalf("Unknown command: %s. Use -list to see available commands.", cmdName)
}
