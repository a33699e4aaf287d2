// Package fixer provides console-specific cartridge checksum detection and
// repair logic. It operates on whole ROM images held in memory and performs
// no I/O itself.
package fixer

// Console represents a gaming console/platform.
type Console string

// Supported console types.
const (
	ConsoleGenesis Console = "Genesis"
	ConsoleSNES    Console = "SNES"
	ConsoleUnknown Console = "Unknown"
)

// Outcome describes the result of processing one ROM image.
type Outcome string

// Possible processing outcomes.
const (
	// OutcomeAlreadyCorrect means the stored checksum matches the computed one.
	OutcomeAlreadyCorrect Outcome = "already-correct"

	// OutcomeFixed means the checksum field was (or, in check mode, would be)
	// rewritten to the computed value.
	OutcomeFixed Outcome = "fixed"

	// OutcomeUnrecognized means no known format signature or header was found.
	OutcomeUnrecognized Outcome = "unrecognized"

	// OutcomeStructuralError means the format was recognized but the image is
	// too small to hold the fields the format requires.
	OutcomeStructuralError Outcome = "structural-error"

	// OutcomeSkipped means the image is a recognized but unsupported variant
	// and was deliberately left untouched.
	OutcomeSkipped Outcome = "skipped"
)

// Report contains the result of processing one ROM image.
type Report struct {
	// FileName is the name of the processed file, set by the caller.
	FileName string

	// Console is the detected console type.
	Console Console

	// Outcome is the processing result.
	Outcome Outcome

	// OldChecksum is the checksum read from the header.
	OldChecksum uint16

	// NewChecksum is the computed checksum.
	NewChecksum uint16

	// Label carries the header-variant name for display (SNES only,
	// e.g. "LoROM" or "Ex-HiROM").
	Label string

	// Reason holds a human-readable explanation for non-success outcomes.
	Reason string
}

// Changed reports whether the image buffer was mutated (or would be in
// check mode).
func (r *Report) Changed() bool {
	return r.Outcome == OutcomeFixed
}

// DetectConsole detects the console format of a ROM image. Genesis is checked
// first because its signature check is unambiguous and cheap; the SNES header
// heuristic is the fallback.
func DetectConsole(data []byte) Console {
	if detectGenesis(data) {
		return ConsoleGenesis
	}
	if _, ok := findSNESHeader(data[CopierOffset(data):]); ok {
		return ConsoleSNES
	}
	return ConsoleUnknown
}

// Fix detects the console format of the image and corrects its checksum
// field in place. The returned report describes what was done.
func Fix(data []byte) *Report {
	return process(data, true)
}

// Check is like Fix but never mutates the image. An OutcomeFixed report
// means the stored checksum does not match the computed one.
func Check(data []byte) *Report {
	return process(data, false)
}

func process(data []byte, apply bool) *Report {
	switch DetectConsole(data) {
	case ConsoleGenesis:
		return genesisFix(data, apply)
	case ConsoleSNES:
		return snesFix(data, apply)
	default:
		return &Report{
			Console: ConsoleUnknown,
			Outcome: OutcomeUnrecognized,
			Reason:  "unknown ROM format",
		}
	}
}
