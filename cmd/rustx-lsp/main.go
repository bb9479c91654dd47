// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"rustx/internal/config"
	"rustx/internal/lsp"
)

const lsName = "rustx" // Name identifier for the language server

var (
	version = "0.0.1"         // Server version
	handler *protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	configPath := flag.String("config", "", "config file (default: .rustx/config.yaml or ~/.config/rustx/config.yaml)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(lsName, version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		// The server still starts with defaults; editors show stderr.
		fmt.Fprintf(os.Stderr, "rustx-lsp: %v, using defaults\n", err)
		cfg = config.Defaults()
	}

	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)
	log := commonlog.GetLogger("rustx")

	rustxHandler := lsp.NewRustxHandler(cfg.Registry(), cfg.Cache.TTL)

	// Wire up the handler with specific LSP method implementations
	handler = rustxHandler.Protocol()

	s := server.NewServer(handler, lsName, false)

	log.Infof("Starting Rustx LSP server %s (extensions: %v)", version, cfg.Registry().Extensions())

	// Start the server over standard input/output (used by most editors for LSP)
	if err := s.RunStdio(); err != nil {
		log.Errorf("Error starting Rustx LSP server: %s", err)
		os.Exit(1)
	}
}
