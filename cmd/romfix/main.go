// Command romfix fixes the header checksums of Genesis / Mega Drive and
// SNES cartridge images.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ZaparooProject/go-romfix"
	"github.com/ZaparooProject/go-romfix/archive"
)

var (
	checkOnly   = flag.Bool("check", false, "report checksum status without modifying files")
	recursive   = flag.Bool("r", false, "recurse into subdirectories")
	jsonOutput  = flag.Bool("json", false, "output reports as JSON")
	showVersion = flag.Bool("version", false, "print version and exit")
)

const appVersion = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file|directory ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Fixes Genesis/Mega Drive (.bin, .md) and SNES (.sfc, .smc) ROM checksums.\n")
		fmt.Fprintf(os.Stderr, "With no arguments, scans the current directory.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s game.sfc\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -check -r roms/\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -check pack.zip/game.smc\n", os.Args[0])
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("romfix version %s\n", appVersion)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"."}
	}

	var reports []*romfix.Report
	for _, arg := range args {
		reports = append(reports, processArg(arg)...)
	}

	if *jsonOutput {
		outputJSON(reports)
	}
}

// processArg handles one command-line argument: a ROM file, a directory or
// an archive (optionally with an internal path). Per-file failures are
// printed and never abort the batch.
func processArg(path string) []*romfix.Report {
	if ap := archive.ParsePath(path); ap != nil {
		if info, err := os.Stat(ap.ArchivePath); err == nil && !info.IsDir() {
			return processArchive(ap)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		printError(path, err)
		return nil
	}

	if info.IsDir() {
		return processDir(path)
	}

	var report *romfix.Report
	if *checkOnly {
		report, err = romfix.CheckFile(path)
	} else {
		report, err = romfix.FixFile(path)
	}
	if err != nil {
		printError(path, err)
		if report == nil {
			return nil
		}
	}
	printReport(report, *checkOnly)
	return []*romfix.Report{report}
}

func processDir(path string) []*romfix.Report {
	paths, err := romfix.Scan(path, *recursive)
	if err != nil {
		printError(path, err)
		return nil
	}
	if len(paths) == 0 && !*jsonOutput {
		fmt.Printf("No ROM files found in %s (.bin, .md, .sfc, .smc)\n", path)
		return nil
	}

	var reports []*romfix.Report
	for _, p := range paths {
		reports = append(reports, processArg(p)...)
	}
	return reports
}

// processArchive checks ROMs inside an archive. Archives are read-only, so
// this always reports rather than fixes.
func processArchive(ap *archive.Path) []*romfix.Report {
	reports, err := romfix.CheckArchive(ap.ArchivePath, ap.InternalPath)
	if err != nil {
		printError(ap.ArchivePath, err)
	}
	for _, report := range reports {
		// Archives are never rewritten, so always use check phrasing.
		printReport(report, true)
	}
	return reports
}

func printError(path string, err error) {
	fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", path, err)
}

func printReport(report *romfix.Report, check bool) {
	if *jsonOutput {
		return
	}

	label := string(report.Console)
	if report.Label != "" {
		label = fmt.Sprintf("%s (%s)", report.Console, report.Label)
	}

	switch report.Outcome {
	case romfix.OutcomeFixed:
		if check {
			fmt.Printf("  ✗ %s: %s checksum mismatch: stored 0x%04X, computed 0x%04X\n",
				report.FileName, label, report.OldChecksum, report.NewChecksum)
		} else {
			fmt.Printf("  ✓ %s: %s checksum fixed: 0x%04X → 0x%04X\n",
				report.FileName, label, report.OldChecksum, report.NewChecksum)
		}
	case romfix.OutcomeAlreadyCorrect:
		fmt.Printf("  ○ %s: %s checksum already correct: 0x%04X\n",
			report.FileName, label, report.OldChecksum)
	case romfix.OutcomeSkipped:
		fmt.Printf("  - %s: %s\n", report.FileName, report.Reason)
	default:
		fmt.Printf("  ✗ %s: %s\n", report.FileName, report.Reason)
	}
}

func outputJSON(reports []*romfix.Report) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
