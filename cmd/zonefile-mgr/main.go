package main

import (
	"fmt"
	"io"
	"os"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/common/log"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/config"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/repos/zonecache"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/repos/zonestore"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/services/manager"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "zonefile-mgr"
)

const usage = `Usage: zonefile-mgr <command> [args]

Commands:
  parse <zonefile|->     parse a zone file and print its exchange form
  validate <zonefile|->  parse and validate; exit 1 if the zone has errors
  generate <data|->      read exchange data and print regenerated zone text
  save <zonefile|->      parse, validate, and persist a zone
  load <origin>          print the zone text of a stored zone
  origins                list origins of all stored zones

A file argument of "-" reads from stdin. Configuration comes from ZFM_*
environment variables (ZFM_FORMAT, ZFM_STORE_PATH, ZFM_LOG_LEVEL, ...).
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Debug(map[string]any{
		"app":     appName,
		"version": version,
		"env":     cfg.Env,
		"format":  cfg.Format,
	}, "starting")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	if err := run(cfg, command, os.Args[2:]); err != nil {
		log.Error(map[string]any{"command": command, "error": err.Error()}, "command failed")
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, command string, args []string) error {
	// Commands that touch the store open it lazily; parse and validate
	// work without one.
	var store manager.ZoneStore
	switch command {
	case "save", "load", "origins":
		var err error
		store, err = zonestore.New(cfg.StorePath, nil)
		if err != nil {
			return fmt.Errorf("open zone store: %w", err)
		}
		defer store.Close()
	}

	cache, err := zonecache.New(cfg.CacheSize)
	if err != nil {
		return fmt.Errorf("create zone cache: %w", err)
	}

	mgr := manager.New(manager.Options{
		Cache:  cache,
		Store:  store,
		Logger: log.GetLogger(),
	})

	switch command {
	case "parse":
		return cmdParse(mgr, cfg, args)
	case "validate":
		return cmdValidate(mgr, args)
	case "generate":
		return cmdGenerate(mgr, cfg, args)
	case "save":
		return cmdSave(mgr, args)
	case "load":
		return cmdLoad(mgr, args)
	case "origins":
		return cmdOrigins(mgr)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// readInput reads the single file argument, with "-" meaning stdin.
func readInput(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one file argument")
	}
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// printDiagnostics writes parse and validation findings to stderr so they
// never mix with data output on stdout.
func printDiagnostics(diags []domain.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.String())
	}
}

func cmdParse(mgr *manager.Manager, cfg *config.AppConfig, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	z, err := mgr.Parse(text)
	if err != nil {
		return err
	}
	printDiagnostics(z.Diagnostics)

	out, err := mgr.Export(z, cfg.Format, true)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func cmdValidate(mgr *manager.Manager, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	z, err := mgr.Parse(text)
	if err != nil {
		return err
	}

	report := mgr.Validate(z)
	printDiagnostics(z.Diagnostics)
	printDiagnostics(report.Diagnostics)

	if !report.OK || domain.HasErrors(z.Diagnostics) {
		return fmt.Errorf("zone %s is not valid", z.Origin)
	}
	fmt.Printf("zone %s is valid (%d records)\n", z.Origin, len(z.Records))
	return nil
}

func cmdGenerate(mgr *manager.Manager, cfg *config.AppConfig, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	z, err := mgr.Import([]byte(text), cfg.Format)
	if err != nil {
		return err
	}
	fmt.Print(mgr.Generate(z))
	return nil
}

func cmdSave(mgr *manager.Manager, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	z, err := mgr.Parse(text)
	if err != nil {
		return err
	}
	printDiagnostics(z.Diagnostics)

	if err := mgr.Save(z); err != nil {
		return err
	}
	fmt.Printf("saved zone %s (%d records)\n", z.Origin, len(z.Records))
	return nil
}

func cmdLoad(mgr *manager.Manager, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one origin argument")
	}
	z, err := mgr.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Print(mgr.Generate(z))
	return nil
}

func cmdOrigins(mgr *manager.Manager) error {
	origins, err := mgr.Origins()
	if err != nil {
		return err
	}
	for _, origin := range origins {
		fmt.Println(origin)
	}
	return nil
}
