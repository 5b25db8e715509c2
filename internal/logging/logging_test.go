package logging

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stm32pio/stm32pio/internal/settings"
)

func TestSetupWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupWriter(&buf, false)

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record emitted at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info record missing")
	}
}

func TestOpAttributeIsPadded(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupWriter(&buf, false)

	logger.Info("running", OpKey, "generate")

	padded := fmt.Sprintf("%-*s", settings.LogFieldWidth, "generate")
	if !strings.Contains(buf.String(), padded) {
		t.Errorf("output lacks padded op field %q:\n%s", padded, buf.String())
	}
}

func TestErrAttrDetailGatedByLevel(t *testing.T) {
	wrapped := fmt.Errorf("generate code: %w", errors.New("cubemx exited with output KO"))

	var quiet bytes.Buffer
	attr := ErrAttr(SetupWriter(&quiet, false), wrapped)
	if got := attr.Value.String(); strings.Contains(got, "KO") {
		t.Errorf("info-level error attr leaks detail: %q", got)
	}

	var verbose bytes.Buffer
	attr = ErrAttr(SetupWriter(&verbose, true), wrapped)
	if got := attr.Value.String(); !strings.Contains(got, "KO") {
		t.Errorf("debug-level error attr lost detail: %q", got)
	}
}
