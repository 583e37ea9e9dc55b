// Command lox runs a script or, without one, starts an interactive prompt.
//
// Usage:
//
//	lox [-ast] [-config path] [-v] [script]
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"lox/internal/ast"
	"lox/internal/lox"
)

const (
	exitUsage = 64
	exitIO    = 74
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("lox", flag.ContinueOnError)
	printAST := flags.Bool("ast", false, "print the syntax tree instead of running the script")
	configPath := flags.String("config", "", "config file (default $HOME/"+defaultConfigName+")")
	verbose := flags.Bool("v", false, "debug logging")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lox [flags] [script]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return exitUsage
	}

	path, explicit := *configPath, *configPath != ""
	if !explicit {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	log := logrus.New()
	log.Out = os.Stderr
	log.SetLevel(cfg.level(*verbose))

	if flags.NArg() == 0 {
		if err := runPrompt(cfg, log); err != nil {
			log.WithError(err).Error("prompt failed")
			return exitIO
		}
		return 0
	}
	return runFile(flags.Arg(0), *printAST, log)
}

func runFile(name string, printAST bool, log *logrus.Logger) int {
	absPath, err := filepath.Abs(name)
	if err != nil {
		log.WithError(err).Error("bad script path")
		return exitIO
	}
	source, err := ioutil.ReadFile(absPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", name, err)
		return exitIO
	}
	log.WithField("script", absPath).Debug("running script")

	runner := lox.NewRunner(os.Stdout, os.Stderr, log)
	if printAST {
		stmts, ok := runner.Parse(string(source))
		if !ok {
			return lox.StatusStaticError.ExitCode()
		}
		fmt.Print(ast.Format(stmts))
		return 0
	}
	return runner.Run(string(source)).ExitCode()
}
