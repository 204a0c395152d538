package config

import "runtime"

// platformNewLine is the host platform's conventional line ending, used
// when new_line_kind = "platform".
var platformNewLine = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()
