package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tabdash/tabdash/internal/bookmarks"
	"github.com/tabdash/tabdash/internal/browser"
	"github.com/tabdash/tabdash/internal/exporter"
	"github.com/tabdash/tabdash/internal/favorites"
	"github.com/tabdash/tabdash/internal/flatten"
	"github.com/tabdash/tabdash/internal/importer"
	"github.com/tabdash/tabdash/internal/linkcheck"
	"github.com/tabdash/tabdash/internal/logging"
	"github.com/tabdash/tabdash/internal/picker"
	"github.com/tabdash/tabdash/internal/readinglist"
	"github.com/tabdash/tabdash/internal/search"
	"github.com/tabdash/tabdash/internal/storage"
	"github.com/tabdash/tabdash/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: tabdash import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		case "check":
			runCheck()
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full dashboard
	runTUI()
}

func printHelp() {
	help := `tabdash - terminal new-tab dashboard for browser bookmarks

Usage:
  tabdash               Open interactive dashboard
  tabdash <query>       Quick search -> select -> open
  tabdash import <file> Import bookmarks from Netscape HTML
  tabdash export [path] Export bookmarks to Netscape HTML
  tabdash check         Probe bookmark URLs for dead links
  tabdash help          Show this help

Dashboard Keybindings:
  Navigation:
    j/k         Move down/up
    g/G         Jump to top/bottom
    tab/l       Next pane
    shift+tab/h Previous pane

  Actions:
    Enter/o     Open bookmark / enter folder
    f           Toggle favorite
    m           Grab/drop favorite (reorder)
    r           Add to reading list
    /           Global fuzzy search
    Y           Copy URL to clipboard
    R           Refresh from the bookmark store

  Editing:
    a/A         Add bookmark/folder
    e           Edit selected bookmark
    d           Delete

  Other:
    ?           Show help overlay
    q           Quit

Data Storage:
  ~/.config/tabdash/bookmarks.json  host bookmark tree
  ~/.config/tabdash/store.json      favorites and settings
  ~/.config/tabdash/tabdash.db      SQLite backend when present
`
	fmt.Print(help)
}

// openTree opens the host bookmark tree at the default location.
func openTree() *bookmarks.FileTree {
	path, err := bookmarks.DefaultFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving bookmarks path: %v\n", err)
		os.Exit(1)
	}
	return bookmarks.NewFileTree(path)
}

// runTUI runs the full interactive dashboard.
func runTUI() {
	logPath, _ := logging.DefaultLogPath()
	log := logging.NewOrNop(logPath)
	defer log.Sync()

	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	settings, err := storage.LoadSettings(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	// The reading list lives in its own table on the SQLite backend
	// and falls back to the key-value store otherwise.
	var provider readinglist.Provider
	if sq, ok := store.(*storage.SQLiteStore); ok {
		provider = readinglist.NewSQLiteProvider(sq.DB())
	}

	app := tui.NewApp(tui.AppParams{
		Tree:      openTree(),
		Favorites: favorites.Load(store, log),
		Reading:   readinglist.NewManager(provider, store, log),
		Settings:  settings,
		Log:       log,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch performs a fuzzy search and opens the selected bookmark.
func runQuickSearch(query string) {
	roots, err := openTree().GetTree()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	res := flatten.Flatten(roots)
	results := search.Bookmarks(res.Bookmarks, query)

	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		os.Exit(0)
	}

	if len(results) == 1 {
		// Single result - open it directly
		fmt.Printf("Opening: %s\n", results[0].Bookmark.Title)
		browser.Open(results[0].Bookmark.URL)
		return
	}

	p := picker.New(results, query)
	program := tea.NewProgram(p)
	finalModel, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
		os.Exit(1)
	}

	finalPicker := finalModel.(picker.Picker)
	selected, ok := finalPicker.Selected()
	if !ok {
		os.Exit(0)
	}
	browser.Open(selected.URL)
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	nodes, err := importer.ParseHTML(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	added, err := openTree().Import(nodes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing bookmarks: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d bookmarks\n", added)
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	roots, err := openTree().GetTree()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	html := exporter.ExportHTML(roots)
	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	res := flatten.Flatten(roots)
	fmt.Printf("Exported %d bookmarks, %d folders to %s\n",
		len(res.Bookmarks), len(res.Folders), outputPath)
}

// runCheck probes every bookmark URL and reports dead or unreachable ones.
func runCheck() {
	roots, err := openTree().GetTree()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	res := flatten.Flatten(roots)
	if len(res.Bookmarks) == 0 {
		fmt.Println("No bookmarks to check")
		return
	}

	fmt.Printf("Checking %d bookmarks...\n", len(res.Bookmarks))
	results := linkcheck.CheckURLs(res.Bookmarks, 10, 10*time.Second, func(completed, total int) {
		fmt.Printf("\r%d/%d", completed, total)
	})
	fmt.Println()

	healthy := 0
	for _, r := range results {
		switch r.Status {
		case linkcheck.Healthy:
			healthy++
		case linkcheck.Dead:
			fmt.Printf("DEAD        %s (%d) %s\n", r.Bookmark.Title, r.StatusCode, r.Bookmark.URL)
		case linkcheck.Unreachable:
			fmt.Printf("UNREACHABLE %s (%s) %s\n", r.Bookmark.Title, r.Error, r.Bookmark.URL)
		}
	}
	fmt.Printf("%d healthy, %d with problems\n", healthy, len(results)-healthy)
}
