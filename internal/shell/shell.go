// Package shell renders validated values as variable assignments for sh,
// PowerShell and cmd.
package shell

import (
	"strings"

	"github.com/pkg/errors"
)

// EnvName turns a key such as "start-month" into "START_MONTH", prepending prefix.
func EnvName(key string, prefix string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
	return prefix + name
}

// splitLines splits s keeping each line break ("\r\n", "\r" or "\n") as its own element.
// "a\r\nb\nc\r" -> ["a", "\r\n", "b", "\n", "c", "\r"]
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var parts []string
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			parts = append(parts, buf.String())
			buf.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n':
			flush()
			parts = append(parts, "\r\n")
			i++
		case s[i] == '\r' || s[i] == '\n':
			flush()
			parts = append(parts, s[i:i+1])
		default:
			buf.WriteByte(s[i])
		}
	}
	flush()
	return parts
}

// shLiteral single-quotes s. Embedded quotes become '\'' and line breaks stay as they are.
func shLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// powershellLiteral builds a '+' concatenation of single-quoted pieces and
// backtick escapes for line breaks.
func powershellLiteral(s string) string {
	var out []string
	for _, p := range splitLines(s) {
		switch p {
		case "\n":
			out = append(out, "\"`n\"")
		case "\r":
			out = append(out, "\"`r\"")
		case "\r\n":
			out = append(out, "\"`r`n\"")
		default:
			out = append(out, "'"+strings.ReplaceAll(p, "'", "''")+"'")
		}
	}
	return strings.Join(out, " + ")
}

// cmdLiteral double-quotes every piece and spells line breaks as \\r and \\n.
func cmdLiteral(s string) string {
	var b strings.Builder
	for _, p := range splitLines(s) {
		switch p {
		case "\n":
			b.WriteString(`"\\n"`)
		case "\r":
			b.WriteString(`"\\r"`)
		case "\r\n":
			b.WriteString(`"\\r\\n"`)
		default:
			b.WriteString(`"` + strings.ReplaceAll(p, `"`, `\"`) + `"`)
		}
	}
	return b.String()
}

// Assignment renders one variable. sh assignments are always exported so that
// child processes see them. With persist the variable is also stored for the
// user: the user environment in PowerShell, setx in cmd. sh has no such store.
func Assignment(shellType ShellType, v Var, persist bool) (string, error) {
	switch shellType {
	case ShellTypeSh:
		return "export " + v.Name + "=" + shLiteral(v.Value), nil
	case ShellTypePowershell:
		if persist {
			return "[System.Environment]::SetEnvironmentVariable(" + powershellLiteral(v.Name) + "," + powershellLiteral(v.Value) + ",'User')", nil
		}
		return "$Env:" + v.Name + " = " + powershellLiteral(v.Value), nil
	case ShellTypeCmd:
		if persist {
			return "setx " + v.Name + " " + cmdLiteral(v.Value), nil
		}
		return `set "` + v.Name + "=" + strings.Trim(cmdLiteral(v.Value), `"`) + `"`, nil
	default:
		return "", errors.Errorf("unsupported shell type: %v", shellType)
	}
}

// Render resolves shellType and renders every variable, one per line, in order.
func Render(shellType ShellType, vars []Var, persist bool) (string, error) {
	resolved, err := Resolve(shellType)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		line, err := Assignment(resolved, v, persist)
		if err != nil {
			return "", errors.Wrapf(err, "variable %s", v.Name)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// Resolve returns shellType unchanged unless it is ShellTypeAuto, in which case
// the user's shell is detected. Anything unrecognised is treated as sh.
func Resolve(shellType ShellType) (ShellType, error) {
	if shellType != ShellTypeAuto {
		if !shellType.IsAShellType() {
			return ShellTypeAuto, errors.Errorf("unsupported shell type: %v", shellType)
		}
		return shellType, nil
	}
	name, err := detectUserShell()
	if err != nil {
		return ShellTypeAuto, errors.Wrap(err, "cannot detect user shell")
	}
	return typeOfShell(name), nil
}

func typeOfShell(name string) ShellType {
	name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	switch name {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	default:
		return ShellTypeSh
	}
}
