package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/process"
)

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "sh", "dash", "tcsh", "csh",
	"powershell", "pwsh", "cmd",
}

// detectUserShell walks up the parent process chain looking for a known shell
// and falls back to $SHELL or %COMSPEC%, which only name the default shell.
func detectUserShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return fallbackShell()
	}
	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		if name == "" {
			if exe, _ := p.Exe(); exe != "" {
				name = filepath.Base(exe)
			}
		}
		if isKnownShell(name) {
			return name, nil
		}

		parent, err := p.Parent()
		if err != nil {
			break
		}
		p = parent
	}
	return fallbackShell()
}

func isKnownShell(name string) bool {
	n := strings.TrimSuffix(strings.ToLower(name), ".exe")
	if n == "" {
		return false
	}
	for _, k := range knownShells {
		if strings.Contains(n, k) {
			return true
		}
	}
	return false
}

func fallbackShell() (string, error) {
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", errors.New("user shell not detected")
}
