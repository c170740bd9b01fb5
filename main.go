package main

import (
	"flag"
	"fmt"
	"os"
)

const usage = `Usage: %s [-config file] <command> [options] [args]

Commands:
  inject  [-o output.png] <carrier.png> <payload>   hide payload in a copy of carrier
  extract [-x] <carrier.png> <output>               recover a hidden payload
  inspect [-tui] <file.png>                         list chunks and checksum status
  history [-n N]                                    show recorded operations
  serve   [-port N]                                 run the http api
`

const (
	exitOK       = 0
	exitError    = 1
	exitNotFound = 2
)

func main() {
	configPath := flag.String("config", "config.toml", "path to toml config")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(exitError)
	}
	if err := setup(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
	code := run(flag.Arg(0), flag.Args()[1:])
	teardown()
	os.Exit(code)
}

func run(cmd string, args []string) int {
	switch cmd {
	case "inject":
		return runInject(args, os.Stdout)
	case "extract":
		return runExtract(args, os.Stdout)
	case "inspect":
		return runInspect(args, os.Stdout)
	case "history":
		return runHistory(args, os.Stdout)
	case "serve":
		return runServe(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		flag.Usage()
		return exitError
	}
}
