package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	rlox "github.com/n30phyte/rlox"
)

const (
	appName     = "rlox"
	historyFile = ".rlox_history"
	promptMain  = "> "
)

var banner = fmt.Sprintf("rlox %s scanner REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", rlox.Version)

func errRed(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	switch len(os.Args) {
	case 1:
		os.Exit(runPrompt())
	case 2:
		switch os.Args[1] {
		case "-h", "--help", "help":
			usage()
			os.Exit(0)
		case "version":
			fmt.Println(rlox.Version)
			os.Exit(0)
		}
		os.Exit(runFile(os.Args[1]))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`rlox %s (built %s)

Usage:
  %s            Start the interactive prompt.
  %s <file>     Scan a script and print its tokens.
  %s version    Print the compiled version.

`, rlox.Version, rlox.BuildDate, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run file
// -----------------------------------------------------------------------------

// runFile scans one script and prints every token. Lexical errors are data,
// so the whole token stream prints before the diagnostics; exit code 65
// signals that the input had invalid spans.
func runFile(file string) int {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	tokens := rlox.NewScanner(string(src)).ScanTokens()
	fmt.Println(rlox.FormatTokens(tokens))

	bad := rlox.Diagnostics(tokens)
	if len(bad) == 0 {
		return 0
	}
	for _, tok := range bad {
		fmt.Fprintln(os.Stderr, errRed(rlox.FormatInvalid(string(src), tok)))
	}
	return 65
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func runPrompt() int {
	fmt.Println(banner)
	rlox.EnableColor = true

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		code, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, errRed(err.Error()))
			break
		}

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			switch strings.TrimSpace(strings.ToLower(code)) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		if strings.TrimSpace(code) == "" {
			continue
		}

		tokens := rlox.NewScanner(code).ScanTokens()
		fmt.Println(rlox.FormatTokens(tokens))
		for _, tok := range rlox.Diagnostics(tokens) {
			fmt.Fprintln(os.Stderr, errRed(rlox.FormatInvalid(code, tok)))
		}
		ln.AppendHistory(code)
	}

	return 0
}
