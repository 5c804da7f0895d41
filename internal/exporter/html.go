package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tabdash/tabdash/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/tabdash-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("tabdash-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the bookmark forest to Netscape bookmark HTML.
// Reserved root containers are unwrapped: their contents appear at the
// top level instead of under a synthetic folder.
func ExportHTML(roots []model.BookmarkNode) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for i := range roots {
		root := &roots[i]
		if root.IsFolder() && model.IsReservedRoot(root.ID) {
			for j := range root.Children {
				writeNode(&b, &root.Children[j], 1)
			}
			continue
		}
		writeNode(&b, root, 1)
	}

	b.WriteString("</DL><p>\n")

	return b.String()
}

// writeNode recursively writes one node and its subtree.
func writeNode(b *strings.Builder, n *model.BookmarkNode, indent int) {
	prefix := strings.Repeat("    ", indent)

	if n.IsFolder() {
		fmt.Fprintf(b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(n.Title))
		fmt.Fprintf(b, "%s<DL><p>\n", prefix)
		for i := range n.Children {
			writeNode(b, &n.Children[i], indent+1)
		}
		fmt.Fprintf(b, "%s</DL><p>\n", prefix)
		return
	}

	if n.URL == "" {
		return
	}
	fmt.Fprintf(b,
		"%s<DT><A HREF=\"%s\">%s</A>\n",
		prefix,
		html.EscapeString(n.URL),
		html.EscapeString(n.Title),
	)
}
