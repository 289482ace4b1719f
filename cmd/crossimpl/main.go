// Command crossimpl exports and verifies conformance envelopes for the
// Go implementation of the AlgoChat envelope protocol.
//
// Usage:
//
//	crossimpl [-config file] export [output-dir]
//	crossimpl [-config file] verify [base-dir]
//
// export encrypts the full corpus under the fixed conformance keys and
// writes one hex file per case. verify sweeps every configured
// implementation's output directory and exits non-zero if any check
// fails; missing directories are reported as skipped.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/algochat/algochat-go/conformance"
)

// errChecksFailed marks a completed sweep with at least one failure, as
// opposed to a harness error that prevented the sweep from running.
var errChecksFailed = errors.New("conformance checks failed")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("crossimpl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a conformance config YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 1 {
		return errors.New("usage: crossimpl [-config file] <export|verify> [dir]")
	}

	// A local .env may carry ALGOCHAT_* overrides; absence is fine.
	_ = godotenv.Load()

	cfg, err := conformance.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	harness, err := cfg.Harness()
	if err != nil {
		return err
	}

	switch rest[0] {
	case "export":
		dir := cfg.ImplDir("go")
		if len(rest) > 1 {
			dir = rest[1]
		}
		return runExport(harness, dir, stdout)
	case "verify":
		if len(rest) > 1 {
			cfg.BaseDir = rest[1]
		}
		return runVerify(harness, cfg, stdout)
	default:
		return fmt.Errorf("unknown command: %s", rest[0])
	}
}

func runExport(harness *conformance.Harness, dir string, stdout io.Writer) error {
	corpus := conformance.DefaultCorpus()
	report := harness.Export(conformance.NewDirStore(dir), corpus)

	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(stdout, "✗ %s: %v\n", res.Name, res.Err)
			continue
		}
		fmt.Fprintf(stdout, "✓ %s\n", res.Name)
	}
	fmt.Fprintf(stdout, "go: exported %d envelopes to %s\n", report.Exported(), dir)

	if report.Failed() {
		return errChecksFailed
	}
	return nil
}

func runVerify(harness *conformance.Harness, cfg conformance.Config, stdout io.Writer) error {
	corpus := conformance.DefaultCorpus()
	report := harness.Verify(cfg.Sources(), corpus)

	for _, impl := range report.Impls {
		if impl.Missing {
			fmt.Fprintf(stdout, "⚠ %s: directory not found, skipping\n", impl.Impl)
			continue
		}
		for _, failure := range impl.Failures {
			fmt.Fprintf(stdout, "  ✗ %s/%s: %v\n", impl.Impl, failure.Name, failure.Err)
		}
		fmt.Fprintf(stdout, "%s: %d/%d passed\n", impl.Impl, impl.Passed, impl.Checked())
	}
	fmt.Fprintf(stdout, "\n%s\n", report.Summary())

	if report.Failed() {
		return errChecksFailed
	}
	return nil
}
