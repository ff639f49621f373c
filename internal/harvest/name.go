package harvest

import "strings"

// CollectionName derives the harvest name from the configured prefix, the
// manifest's YYYY-MM period token, and the archive's base filename:
// <prefix>-<period>-<stem>. The stem is the base name truncated at the
// first dot, not the last; "crawl.2024.wacz" yields stem "crawl". That
// matches the names already produced for existing harvests and must not be
// changed to extension stripping.
func CollectionName(prefix, period, archiveBaseName string) string {
	stem, _, _ := strings.Cut(archiveBaseName, ".")
	return prefix + "-" + period + "-" + stem
}
