// Package markdown turns generated documentation into a flat list of block
// nodes that any renderer (web UI, plain text, JSON API) can consume.
package markdown

import (
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockList      BlockKind = "list"
	BlockParagraph BlockKind = "paragraph"
	BlockCode      BlockKind = "code"
)

// Block is one top-level piece of a document. Which fields are set depends on Kind:
// headings use Level and Text, paragraphs use Text, lists use Items and Ordered,
// code uses Text and Language.
type Block struct {
	Kind     BlockKind `json:"kind"`
	Level    int       `json:"level,omitempty"`
	Text     string    `json:"text,omitempty"`
	Items    []string  `json:"items,omitempty"`
	Ordered  bool      `json:"ordered,omitempty"`
	Language string    `json:"language,omitempty"`
}

var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func getParser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return parserInstance
}

// Parse splits source into blocks. Block quotes are unwrapped into their
// contents; thematic breaks and raw HTML are dropped.
func Parse(source string) []Block {
	if strings.TrimSpace(source) == "" {
		return nil
	}
	src := []byte(source)
	document := getParser().Parser().Parse(text.NewReader(src))

	var blocks []Block
	_ = ast.Walk(document, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			blocks = append(blocks, Block{Kind: BlockHeading, Level: node.Level, Text: joinLines(node, src)})
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			if t := joinLines(node, src); t != "" {
				blocks = append(blocks, Block{Kind: BlockParagraph, Text: t})
			}
			return ast.WalkSkipChildren, nil
		case *ast.List:
			blocks = append(blocks, Block{Kind: BlockList, Ordered: node.IsOrdered(), Items: listItems(node, src, "")})
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			blocks = append(blocks, Block{Kind: BlockCode, Language: string(node.Language(src)), Text: codeLines(node, src)})
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			blocks = append(blocks, Block{Kind: BlockCode, Text: codeLines(node, src)})
			return ast.WalkSkipChildren, nil
		case *ast.ThematicBreak, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

// listItems flattens a list; nested list items are indented by two spaces per level.
func listItems(list *ast.List, src []byte, indent string) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var parts []string
		var nested []string
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if sub, ok := child.(*ast.List); ok {
				nested = append(nested, listItems(sub, src, indent+"  ")...)
				continue
			}
			if t := joinLines(child, src); t != "" {
				parts = append(parts, t)
			}
		}
		items = append(items, indent+strings.Join(parts, " "))
		items = append(items, nested...)
	}
	return items
}

func joinLines(n ast.Node, src []byte) string {
	lines := n.Lines()
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		line := strings.TrimRight(string(segment.Value(src)), " \t\r\n")
		out = append(out, strings.TrimLeft(line, " \t"))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func codeLines(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.Write(segment.Value(src))
	}
	return strings.TrimRight(b.String(), "\n")
}
