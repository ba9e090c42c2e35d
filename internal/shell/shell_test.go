package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvName(t *testing.T) {
	require.Equal(t, "START_MONTH", EnvName("start-month", ""))
	require.Equal(t, "APP_LEVEL", EnvName("level", "APP_"))
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in  string
		exp []string
	}{
		{"", []string{""}},
		{"abc", []string{"abc"}},
		{"a\r\nb\nc\r", []string{"a", "\r\n", "b", "\n", "c", "\r"}},
		{"\n\n", []string{"\n", "\n"}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.exp, splitLines(tc.in), "%q", tc.in)
	}
}

func TestAssignment(t *testing.T) {
	cases := []struct {
		name    string
		typ     ShellType
		v       Var
		persist bool
		exp     string
	}{
		{"sh", ShellTypeSh, Var{"MONTH", "12"}, false, "export MONTH='12'"},
		{"sh_persist", ShellTypeSh, Var{"MONTH", "12"}, true, "export MONTH='12'"},
		{"sh_quote", ShellTypeSh, Var{"X", "it's"}, false, `export X='it'\''s'`},
		{"powershell", ShellTypePowershell, Var{"MONTH", "12"}, false, "$Env:MONTH = '12'"},
		{"powershell_persist", ShellTypePowershell, Var{"MONTH", "12"}, true, "[System.Environment]::SetEnvironmentVariable('MONTH','12','User')"},
		{"powershell_newline", ShellTypePowershell, Var{"X", "a\nb's"}, false, "$Env:X = 'a' + \"`n\" + 'b''s'"},
		{"powershell_empty", ShellTypePowershell, Var{"X", ""}, false, "$Env:X = ''"},
		{"cmd", ShellTypeCmd, Var{"MONTH", "12"}, false, `set "MONTH=12"`},
		{"cmd_persist", ShellTypeCmd, Var{"MONTH", "12"}, true, `setx MONTH "12"`},
		{"cmd_newline", ShellTypeCmd, Var{"X", "a\r\nb"}, true, `setx X "a""\\r\\n""b"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Assignment(tc.typ, tc.v, tc.persist)
			require.NoError(t, err)
			require.Equal(t, tc.exp, got)
		})
	}

	_, err := Assignment(ShellTypeAuto, Var{"X", "1"}, false)
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	out, err := Render(ShellTypeSh, []Var{{"A", "1"}, {"B", "Monday"}}, false)
	require.NoError(t, err)
	require.Equal(t, "export A='1'\nexport B='Monday'", out)

	out, err = Render(ShellTypePowershell, []Var{{"A", "1"}}, true)
	require.NoError(t, err)
	require.Equal(t, "[System.Environment]::SetEnvironmentVariable('A','1','User')", out)

	out, err = Render(ShellTypeCmd, nil, false)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestResolve(t *testing.T) {
	for _, typ := range []ShellType{ShellTypeSh, ShellTypePowershell, ShellTypeCmd} {
		got, err := Resolve(typ)
		require.NoError(t, err)
		require.Equal(t, typ, got)
	}
	_, err := Resolve(ShellType(42))
	require.Error(t, err)
}

func TestTypeOfShell(t *testing.T) {
	require.Equal(t, ShellTypePowershell, typeOfShell("pwsh"))
	require.Equal(t, ShellTypePowershell, typeOfShell("PowerShell.exe"))
	require.Equal(t, ShellTypeCmd, typeOfShell("cmd.exe"))
	require.Equal(t, ShellTypeSh, typeOfShell("zsh"))
	require.Equal(t, ShellTypeSh, typeOfShell("fish"))
}

func TestIsKnownShell(t *testing.T) {
	require.True(t, isKnownShell("bash"))
	require.True(t, isKnownShell("-zsh"))
	require.True(t, isKnownShell("pwsh.exe"))
	require.False(t, isKnownShell(""))
	require.False(t, isKnownShell("go"))
}

func TestFallbackShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/fish")
	name, err := fallbackShell()
	require.NoError(t, err)
	require.Equal(t, "fish", name)

	t.Setenv("SHELL", "")
	t.Setenv("COMSPEC", `C:\Windows\System32\cmd.exe`)
	name, err = fallbackShell()
	require.NoError(t, err)
	require.NotEmpty(t, name)

	t.Setenv("COMSPEC", "")
	_, err = fallbackShell()
	require.Error(t, err)
}

func TestShellTypeString(t *testing.T) {
	typ, err := ShellTypeString("PowerShell")
	require.NoError(t, err)
	require.Equal(t, ShellTypePowershell, typ)
	require.Equal(t, "cmd", ShellTypeCmd.String())
	require.Equal(t, []string{"auto", "sh", "powershell", "cmd"}, ShellTypeStrings())
	_, err = ShellTypeString("tcsh")
	require.Error(t, err)
}
