package harvest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dragounv/open-wacz/internal/wacz"
)

// infoFileName is the provenance record inside logs/crawl.
const infoFileName = "info.txt"

// WriteInfo emits the harvest provenance record to logs/crawl/info.txt under
// root. Lines appear in fixed order; a wacz_<field> line is written only for
// optional manifest fields that are present. Overwrites an existing record,
// though the layout builder guarantees a fresh directory in normal runs.
func WriteInfo(root string, meta wacz.Metadata, originalFile, harvestName, toolInfo string, now time.Time) error {
	path := filepath.Join(CrawlLogPath(root), infoFileName)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create info file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, "info: this harvest was extracted from WACZ file")
	fmt.Fprintf(w, "original_file: %s\n", originalFile)
	fmt.Fprintf(w, "converted_with: %s\n", toolInfo)
	fmt.Fprintf(w, "conversion_date: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(w, "harvest_name: %s\n", harvestName)
	fmt.Fprintf(w, "wacz_created: %s\n", meta.Created)
	if meta.Title != "" {
		fmt.Fprintf(w, "wacz_title: %s\n", meta.Title)
	}
	if meta.Software != "" {
		fmt.Fprintf(w, "wacz_software: %s\n", meta.Software)
	}
	if meta.MainPageURL != "" {
		fmt.Fprintf(w, "wacz_main_page_url: %s\n", meta.MainPageURL)
	}
	if meta.MainPageDate != "" {
		fmt.Fprintf(w, "wacz_main_page_date: %s\n", meta.MainPageDate)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write info file: %w", err)
	}
	return file.Close()
}
