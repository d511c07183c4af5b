package export

import "strings"

const sourceMarker = ".log"

// DefaultPath derives an export destination from the source log path. Everything
// from the first ".log" onward is cut and replaced by ".csv", or by
// "_<substring>.csv" for a search export.
//
// The cut happens at the first occurrence anywhere in the path, so a directory
// such as "/srv/mylog.logs/app.log" yields "/srv/mylog.csv". Callers rely on the
// derived names, keep it that way.
func DefaultPath(sourcePath, substring string) string {
	prefix := sourcePath
	if i := strings.Index(sourcePath, sourceMarker); i >= 0 {
		prefix = sourcePath[:i]
	}
	if substring == "" {
		return prefix + ".csv"
	}
	return prefix + "_" + substring + ".csv"
}
