// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shellutil

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Shell identifiers.
const (
	// ShellBash is the Bourne Again Shell.
	ShellBash = "bash"

	// ShellCmd is the Windows Command Prompt.
	ShellCmd = "cmd"

	// ShellPowerShell is Windows PowerShell (5.1 and earlier).
	ShellPowerShell = "powershell"

	// ShellPwsh is PowerShell Core (6.0+, cross-platform).
	ShellPwsh = "pwsh"

	// ShellSh is the POSIX shell.
	ShellSh = "sh"

	// ShellZsh is the Z Shell.
	ShellZsh = "zsh"

	// ShellFish is the friendly interactive shell.
	ShellFish = "fish"
)

const osWindows = "windows"

// Environment variables consulted by Detect.
const (
	// EnvShell holds the login shell on Unix systems.
	EnvShell = "SHELL"

	// EnvPSModulePath is set inside every PowerShell session.
	EnvPSModulePath = "PSModulePath"

	// EnvPSEdition distinguishes PowerShell Core ("Core") from Windows PowerShell.
	EnvPSEdition = "PSEdition"
)

// Lookup reads an environment variable.
type Lookup interface {
	LookupEnv(key string) (string, bool)
}

// Detect guesses the interactive shell from the environment in src.
func Detect(src Lookup) string {
	if runtime.GOOS == osWindows {
		return detectWindows(src)
	}
	if shell, ok := src.LookupEnv(EnvShell); ok && shell != "" {
		return normalize(shell)
	}
	return ShellSh
}

// detectWindows recognises PowerShell sessions, falling back to cmd.
// PSModulePath alone is unreliable because it is also set machine-wide, so a
// user-profile entry is required to count it as a PowerShell session.
func detectWindows(src Lookup) string {
	if edition, ok := src.LookupEnv(EnvPSEdition); ok {
		if strings.EqualFold(edition, "Core") {
			return ShellPwsh
		}
		return ShellPowerShell
	}
	if modules, ok := src.LookupEnv(EnvPSModulePath); ok {
		lower := strings.ToLower(modules)
		switch {
		case strings.Contains(lower, `documents\powershell\modules`):
			return ShellPwsh
		case strings.Contains(lower, `documents\windowspowershell\modules`):
			return ShellPowerShell
		}
	}
	return ShellCmd
}

// normalize maps a shell path such as /usr/local/bin/zsh to its identifier.
func normalize(shellPath string) string {
	name := strings.ToLower(filepath.Base(shellPath))
	name = strings.TrimSuffix(name, ".exe")
	switch name {
	case ShellBash, ShellZsh, ShellFish, ShellPwsh, ShellPowerShell, ShellCmd:
		return name
	default:
		return ShellSh
	}
}

// ShowVariable returns the command that prints variable in shell.
func ShowVariable(shell, variable string) string {
	switch shell {
	case ShellCmd:
		if strings.EqualFold(variable, "PATH") {
			return "path"
		}
		return "echo %" + variable + "%"
	case ShellPwsh, ShellPowerShell:
		return "$env:" + variable
	default:
		return "echo $" + variable
	}
}
