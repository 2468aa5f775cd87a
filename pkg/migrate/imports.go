package migrate

import "strings"

// AlreadyMigrated reports whether content carries the migration marker.
// It must be checked before any mutation so the pipeline stays idempotent.
func AlreadyMigrated(content, marker string) bool {
	return strings.Contains(content, marker)
}

// InjectImport inserts imp immediately before the first occurrence of
// anchor. When the anchor import is absent the declaration is prepended to
// the top of the file instead. Callers guard with AlreadyMigrated, so at
// most one copy is ever added.
func InjectImport(content, imp, anchor string) string {
	if anchor != "" && strings.Contains(content, anchor) {
		return strings.Replace(content, anchor, imp+anchor, 1)
	}
	return imp + content
}
