// Package cubemx drives the STM32CubeMX code generator headlessly.
//
// CubeMX is a Java application: on setups where a Java command is
// configured (bundled JRE or user install) it is started through java -jar,
// otherwise the executable is assumed to be self-contained. The exit code
// alone is not trusted; the textual output decides success.
package cubemx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/stm32pio/stm32pio/internal/settings"
)

// Sentinel errors classifying a generation run.
var (
	// ErrGenerationFailed indicates CubeMX reported a code generation
	// exception in its output.
	ErrGenerationFailed = errors.New("cubemx: code generation failed")

	// ErrInconclusiveOutput indicates the run produced neither the success
	// nor the error marker, so the result cannot be trusted.
	ErrInconclusiveOutput = errors.New("cubemx: output lacks the success marker")
)

var execCommand = exec.CommandContext

// Runner invokes CubeMX with a command script.
type Runner struct {
	// CubeMXCmd is the path to the STM32CubeMX executable.
	CubeMXCmd string

	// JavaCmd starts the Java runtime. A value matched by settings.IsNone
	// (or an empty one) makes the runner invoke CubeMX directly.
	JavaCmd string
}

// Command builds the headless CubeMX invocation reading commands from
// scriptPath. -q suppresses the GUI splash, -s keeps the run scripted.
func (r Runner) Command(ctx context.Context, scriptPath string) *exec.Cmd {
	if r.JavaCmd != "" && !settings.IsNone(r.JavaCmd) {
		return execCommand(ctx, r.JavaCmd, "-jar", r.CubeMXCmd, "-q", scriptPath, "-s")
	}
	return execCommand(ctx, r.CubeMXCmd, "-q", scriptPath, "-s")
}

// Run executes CubeMX with the given script and classifies its output.
// The combined output is returned for logging in every case.
func (r Runner) Run(ctx context.Context, scriptPath string) (string, error) {
	cmd := r.Command(ctx, scriptPath)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	runErr := cmd.Run()
	output := buf.String()

	if err := Classify(output); err != nil {
		if runErr != nil {
			return output, fmt.Errorf("run %s: %w: %w", r.CubeMXCmd, err, runErr)
		}
		return output, err
	}
	return output, nil
}

// Classify inspects CubeMX textual output and decides whether the
// generation succeeded. The error marker wins over everything; without it,
// the success marker must be present (a zero exit code with neither marker
// still counts as a failure, e.g. when a migration dialog was cancelled).
func Classify(output string) error {
	if strings.Contains(output, settings.CubeMXErrorMarker) {
		return ErrGenerationFailed
	}
	if !strings.Contains(output, settings.CubeMXSuccessMarker) {
		return ErrInconclusiveOutput
	}
	return nil
}
