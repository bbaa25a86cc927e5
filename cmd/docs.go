package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd writes the Markdown documentation of every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for the commands",
	Args:   cobra.ExactArgs(1),
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return makeDocs(rootCmd, args[0])
	},
}

// page is a command's place in the navigation of the just-the-docs theme
// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
type page struct {
	title       string
	parent      string
	grandParent string
	navOrder    int
	hasChildren bool
}

// frontMatter is the YAML heading the theme needs atop each page
func (p page) frontMatter() string {
	var b strings.Builder
	b.WriteString("---\nlayout: default\n")
	fmt.Fprintf(&b, "title: %s\n", p.title)
	if p.parent != "" {
		fmt.Fprintf(&b, "parent: %s\n", p.parent)
	}
	if p.grandParent != "" {
		fmt.Fprintf(&b, "grand_parent: %s\n", p.grandParent)
	}
	fmt.Fprintf(&b, "nav_order: %d\n", p.navOrder)
	if p.hasChildren {
		b.WriteString("has_children: true\n")
	}
	if p.parent == "" {
		b.WriteString("permalink: /\n")
	}
	b.WriteString("---\n")
	return b.String()
}

// pages maps the base name of each command's Markdown file to its page.
// Siblings are ordered as cobra lists them
func pages(root *cobra.Command) map[string]page {
	pages := make(map[string]page)

	var walk func(c *cobra.Command, order int)
	walk = func(c *cobra.Command, order int) {
		p := page{title: c.Name(), navOrder: order}
		if parent := c.Parent(); parent != nil {
			p.parent = parent.Name()
			if grandParent := parent.Parent(); grandParent != nil {
				p.grandParent = grandParent.Name()
			}
		}

		children := 0
		for _, child := range c.Commands() {
			if !child.IsAvailableCommand() || child.IsAdditionalHelpTopicCommand() {
				continue
			}
			walk(child, children)
			children++
		}
		p.hasChildren = children > 0

		pages[strings.ReplaceAll(c.CommandPath(), " ", "_")] = p
	}
	walk(root, 0)

	return pages
}

// makeDocs writes a Markdown page per command to dir
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func makeDocs(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	pages := pages(root)
	base := func(filename string) string {
		name := filepath.Base(filename)
		return strings.TrimSuffix(name, path.Ext(name))
	}

	filePrepender := func(filename string) string {
		return pages[base(filename)].frontMatter()
	}
	linkHandler := func(filename string) string {
		if base(filename) == root.Name() {
			return "/"
		}
		return base(filename)
	}

	root.DisableAutoGenTag = true
	return doc.GenMarkdownTreeCustom(root, dir, filePrepender, linkHandler)
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
