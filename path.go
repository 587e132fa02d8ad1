package reprozip

import (
	"path"
	"path/filepath"
	"strings"
)

// NormalizeArcname derives the stored name for a source path.
//
// It performs the following transformations:
//   - Strips the volume name: `C:\out\a.txt` → "out/a.txt" (Windows)
//   - Converts separators to slashes: `out\a.txt` → "out/a.txt"
//   - Strips leading slashes: "/etc/nginx.conf" → "etc/nginx.conf"
//   - Collapses "." elements and duplicate slashes: "./a//b" → "a/b"
//
// Interior ".." elements are resolved lexically; a path that is nothing
// but "." yields ".". Adding a file by relative or absolute path to the
// same location therefore stores the same name only when the caller
// passes an explicit name via AddWithName, matching how zip tooling
// conventionally derives member names.
func NormalizeArcname(p string) string {
	p = strings.TrimPrefix(p, filepath.VolumeName(p))
	p = filepath.ToSlash(p)
	p = strings.TrimLeft(p, "/")
	if p == "" {
		return "."
	}
	return path.Clean(p)
}
