// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package shellutil identifies the user's interactive shell and builds
// shell commands for it.
//
// pathfind uses it to tell the user how to print the search path variable
// in the shell they are actually running:
//
//	shell := shellutil.Detect(env.OS{})
//	fmt.Println(shellutil.ShowVariable(shell, "PATH"))
//	// bash: echo $PATH
//	// pwsh: $env:PATH
//	// cmd:  path
//
// Detection is heuristic and never fails; when nothing identifies the shell
// the platform default is returned (cmd on Windows, sh elsewhere).
package shellutil
