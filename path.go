package main

// Resolving request URIs to filesystem paths.

import (
	"path/filepath"
	"strings"
)

// resolveRequestPath canonicalizes root+uri to an absolute path with all
// symlinks and dot components resolved, and reports whether the result stays
// inside the document root. The comparison is component-aware: the resolved
// path must be the root itself or start with root plus a separator, so a
// sibling directory whose name shares the root's name as a string prefix
// (e.g. /srv/www vs. /srv/www-evil) is rejected.
//
// root must already be canonicalized, which loadConfiguration takes care of.
func resolveRequestPath(root, uri string) (string, bool) {
	resolved, err := filepath.EvalSymlinks(root + uri)
	if err != nil {
		return "", false
	}
	if resolved != root && !strings.HasPrefix(resolved, root+string(filepath.Separator)) {
		return "", false
	}
	return resolved, true
}
