package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kauaigouveia/lanchonete/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		stockFile   = flag.String("stock", "", "Path to stock seed CSV file (name,quantity,unit,unit_cost)")
		recipesFile = flag.String("recipes", "", "Path to recipes seed CSV file (recipe,ingredient,amount)")
		noSeed      = flag.Bool("no-seed", false, "Skip registering the default recipe")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		StockFile:   *stockFile,
		RecipesFile: *recipesFile,
		NoSeed:      *noSeed,
		Help:        *help,
	}

	// Create and execute command
	cmd := commands.NewMenuCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
