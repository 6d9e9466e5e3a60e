package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hivegrid/hivectl/cmd/root"
)

func main() {
	deps, err := root.DefaultDeps()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	err = root.NewRootCmd(deps).Execute()
	deps.Shutdown(context.Background())
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
