package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/forgec/internal/compiler"
	"github.com/peterkuimelis/forgec/internal/config"
	forgecmcp "github.com/peterkuimelis/forgec/internal/mcp"
)

func main() {
	configFile := flag.String("config", "", "path to forgec YAML config")
	flag.Parse()

	if *configFile != "" {
		cfg, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		forgecmcp.SetCompiler(compiler.New(cfg.CompilerOptions()...))
	}

	s := server.NewMCPServer("forgec", "1.0.0")
	forgecmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
