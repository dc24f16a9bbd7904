package project

import "strings"

// PathFlag is the flag the launcher passes to satellite processes.
const PathFlag = "--project-path"

// PathFromArgs scans args for the project path flag. It accepts
// "--project-path <dir>" and "--project-path=<dir>" and falls back to "."
// when the flag is absent or has no usable value. The flag tokens are
// removed from the returned rest.
func PathFromArgs(args []string) (path string, rest []string) {
	path = "."
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == PathFlag:
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				path = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, PathFlag+"="):
			if v := strings.TrimPrefix(arg, PathFlag+"="); v != "" {
				path = v
			}
		default:
			rest = append(rest, arg)
		}
	}
	return path, rest
}
