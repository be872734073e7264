package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterkuimelis/forgec/internal/compiler"
	"github.com/peterkuimelis/forgec/internal/config"
	"github.com/peterkuimelis/forgec/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	configFile := flag.String("config", "", "path to forgec YAML config")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	srv := web.NewServer(compiler.New(cfg.CompilerOptions()...))

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("forgec playground listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
