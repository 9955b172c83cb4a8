// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/neoview/root.go
// Summary: Command definitions and session wiring.
// Usage: `neoview [files...]` embeds the editor; `neoview recent` lists
//        remembered sessions.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"neoview/config"
	"neoview/nvim"
	"neoview/project"
	"neoview/screen"
)

func buildRootCommand() *cobra.Command {
	var nvimPath string
	var logPath string

	root := &cobra.Command{
		Use:   "neoview [files...]",
		Short: "Terminal front-end for an embedded Neovim",
		Long: `neoview embeds a Neovim process and mirrors its screen grid onto
the terminal, repainting only the regions each update batch touched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(nvimPath, logPath, args)
		},
	}
	root.Flags().StringVar(&nvimPath, "nvim", "", "Path to the nvim binary (default from config)")
	root.Flags().StringVar(&logPath, "log", "", "Log file path (default from config)")
	root.AddCommand(buildRecentCommand())
	return root
}

func buildRecentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently opened sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := project.DefaultPath()
			if err != nil {
				return err
			}
			store, err := project.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			cfg := config.Get()
			entries, err := store.Recent(cfg.GetInt("sessions", "keep_recent", 50))
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%s  %s\n", e.LastOpened.Format("2006-01-02 15:04"), e.Path)
			}
			return nil
		},
	}
}

func runSession(nvimPath, logPath string, files []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("neoview needs a terminal")
	}

	cfg := config.Get()
	if err := setupLogging(cfg, logPath); err != nil {
		return err
	}
	log.Println("Neoview: starting")

	if nvimPath == "" {
		nvimPath = cfg.GetString("editor", "command", "nvim")
	}
	args := append(cfg.GetStrings("editor", "args"), files...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := nvim.Spawn(ctx, nvimPath, args)
	if err != nil {
		return err
	}
	defer client.Close()

	scr, err := screen.New(client)
	if err != nil {
		return err
	}
	defer scr.Close()

	// The serve loop must be pumping before any call expects a response.
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- client.Serve()
	}()

	columns, rows := scr.Size()
	if err := client.Attach(columns, rows, scr.Batches()); err != nil {
		return err
	}

	rememberSessions(cfg, files)

	stopWatch, err := config.Watch(nil)
	if err != nil {
		log.Printf("Neoview: config watch unavailable: %v", err)
	} else {
		defer stopWatch()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("Neoview: received %v, quitting", sig)
		client.Quit()
	}()

	uiErr := make(chan error, 1)
	go func() {
		uiErr <- scr.Run()
	}()

	// The RPC session ends when the editor exits; that is the normal way out.
	if err := <-serveErr; err != nil {
		log.Printf("Neoview: session ended: %v", err)
	}
	scr.Close()
	<-uiErr
	log.Println("Neoview: stopped")
	return nil
}

// rememberSessions records opened paths, best effort.
func rememberSessions(cfg config.Config, files []string) {
	if len(files) == 0 || !cfg.GetBool("sessions", "enabled", true) {
		return
	}
	dbPath, err := project.DefaultPath()
	if err != nil {
		log.Printf("Neoview: session store unavailable: %v", err)
		return
	}
	store, err := project.Open(dbPath)
	if err != nil {
		log.Printf("Neoview: session store unavailable: %v", err)
		return
	}
	defer store.Close()
	for _, f := range files {
		if err := store.Touch(f); err != nil {
			log.Printf("Neoview: failed to record session %s: %v", f, err)
		}
	}
	if err := store.Prune(cfg.GetInt("sessions", "keep_recent", 50)); err != nil {
		log.Printf("Neoview: session prune failed: %v", err)
	}
}

// setupLogging sends the standard logger to a file; the terminal belongs to
// the surface once it initializes.
func setupLogging(cfg config.Config, override string) error {
	path := override
	if path == "" {
		path = cfg.GetString("log", "file", "")
	}
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return err
		}
		path = filepath.Join(configDir, "neoview", "neoview.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(logFile)
	return nil
}
