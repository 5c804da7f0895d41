package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tabdash/tabdash/internal/model"
)

// nodeBuilder accumulates a subtree during parsing. Children are held
// by pointer so the stack can keep appending into open folders.
type nodeBuilder struct {
	title    string
	url      string
	folder   bool
	children []*nodeBuilder
}

// ParseHTML parses Netscape bookmark HTML into a bookmark forest.
// Nodes carry locally generated ids; a tree provider may replace them
// with its own scheme on import.
func ParseHTML(r io.Reader) ([]model.BookmarkNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	root := &nodeBuilder{folder: true}

	// Stack of open folders; top receives new items.
	stack := []*nodeBuilder{root}
	var pending *nodeBuilder // folder from an H3 waiting for its DL

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				name := getTextContent(n)
				if name != "" {
					folder := &nodeBuilder{title: name, folder: true}
					top := stack[len(stack)-1]
					top.children = append(top.children, folder)
					// Pushed when the matching DL shows up.
					pending = folder
				}
				return // Don't recurse into H3

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					// Skip bookmarks without URL
					return
				}
				title := getTextContent(n)
				if title == "" {
					title = href // fallback to URL as title
				}
				top := stack[len(stack)-1]
				top.children = append(top.children, &nodeBuilder{title: title, url: href})
				return // Don't recurse into A

			case "dl":
				pushed := false
				if pending != nil {
					stack = append(stack, pending)
					pending = nil
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					stack = stack[:len(stack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)

	forest := make([]model.BookmarkNode, 0, len(root.children))
	for _, child := range root.children {
		forest = append(forest, build(child, ""))
	}
	return forest, nil
}

// build converts a builder subtree into the model shape.
func build(b *nodeBuilder, parentID string) model.BookmarkNode {
	if b.folder {
		node := model.NewFolderNode(b.title, parentID)
		for _, c := range b.children {
			node.Children = append(node.Children, build(c, node.ID))
		}
		return node
	}
	return model.NewBookmarkNode(b.title, b.url, parentID)
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
