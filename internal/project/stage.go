package project

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/stm32pio/stm32pio/internal/defs"
)

// Stage is a point on the project lifecycle ladder. Stages are ordered;
// a project sits at the last stage whose on-disk evidence is present
// together with all the stages before it.
type Stage int

const (
	StageUnknown Stage = iota
	StageEmpty
	StageInitialized
	StageGenerated
	StagePIOInitialized
	StagePatched
)

func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "project folder with the .ioc file"
	case StageInitialized:
		return "stm32pio initialized"
	case StageGenerated:
		return "CubeMX code generated"
	case StagePIOInitialized:
		return "PlatformIO project initialized"
	case StagePatched:
		return "PlatformIO project patched"
	default:
		return "unknown"
	}
}

// State inspects the filesystem and reports the last consecutively
// completed stage. A later artifact without the earlier ones does not
// advance the ladder.
func (p *Project) State() Stage {
	checks := []func() bool{
		p.hasIOC,
		p.hasConfig,
		p.hasGeneratedCode,
		p.hasPIOProject,
		p.isPatched,
	}
	stage := StageUnknown
	for i, check := range checks {
		if !check() {
			break
		}
		stage = StageEmpty + Stage(i)
	}
	return stage
}

func (p *Project) hasIOC() bool {
	_, err := p.iocFile()
	return err == nil
}

func (p *Project) hasConfig() bool {
	return fileExists(p.manager.Path())
}

func (p *Project) hasGeneratedCode() bool {
	entries, err := os.ReadDir(filepath.Join(p.root, "Inc"))
	return err == nil && len(entries) > 0
}

func (p *Project) hasPIOProject() bool {
	info, err := os.Stat(filepath.Join(p.root, defs.PlatformIOINI))
	return err == nil && !info.IsDir() && info.Size() > 0
}

// isPatched reports whether every key of the configured patch fragment
// is present in platformio.ini with the patched value, and the legacy
// 'include' directory is gone.
func (p *Project) isPatched() bool {
	target, err := ini.Load(filepath.Join(p.root, defs.PlatformIOINI))
	if err != nil {
		return false
	}
	patch, err := ini.Load([]byte(p.manager.Config().Project.PlatformIOIniPatchContent))
	if err != nil {
		return false
	}
	for _, sec := range patch.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		tgt, err := target.GetSection(sec.Name())
		if err != nil {
			return false
		}
		for _, key := range sec.Keys() {
			got, err := tgt.GetKey(key.Name())
			if err != nil || got.Value() != key.Value() {
				return false
			}
		}
	}
	if _, err := os.Stat(filepath.Join(p.root, "include")); err == nil {
		return false
	}
	return true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
