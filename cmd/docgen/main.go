// Package main provides a documentation generator for the universe
// module. It copies hand-written guides and generates API documentation
// from Go source code using gomarkdoc.
package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Package represents a Go package to document.
type Package struct {
	Name     string
	Title    string
	Path     string
	Position int
}

// Packages to document (public-facing), in order.
var packages = []Package{
	{Name: "universe", Title: "Universe", Path: "pkg/universe", Position: 1},
	{Name: "derived", Title: "Derived Values", Path: "pkg/derived", Position: 2},
	{Name: "observe", Title: "Observability", Path: "pkg/observe", Position: 3},
	{Name: "universetest", Title: "Test Utilities", Path: "pkg/universetest", Position: 4},
}

func main() {
	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Repository root: %s\n", root)

	if err := ensureGomarkdoc(); err != nil {
		fmt.Fprintf(os.Stderr, "Error ensuring gomarkdoc: %v\n", err)
		os.Exit(1)
	}

	docsDir := filepath.Join(root, "website", "docs")
	apiDir := filepath.Join(docsDir, "api")

	if err := os.MkdirAll(apiDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating api directory: %v\n", err)
		os.Exit(1)
	}

	// Hand-written guides live in website-docs/ and are optional.
	websiteDocsDir := filepath.Join(root, "website-docs")
	if err := copyDir(websiteDocsDir, docsDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error copying website-docs: %v\n", err)
		os.Exit(1)
	}

	if err := writeAPICategoryFile(apiDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing API category file: %v\n", err)
		os.Exit(1)
	}

	for _, pkg := range packages {
		pkgPath := filepath.Join(root, pkg.Path)
		if _, err := os.Stat(pkgPath); os.IsNotExist(err) {
			fmt.Printf("Skipping %s (not found)\n", pkg.Name)
			continue
		}

		fmt.Printf("Generating docs for %s...\n", pkg.Name)
		if err := generatePackageDocs(root, pkg, apiDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating docs for %s: %v\n", pkg.Name, err)
			os.Exit(1)
		}
	}

	fmt.Println("\nDocumentation generated successfully!")
	fmt.Println("Run 'cd website && npm start' to preview")
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// Walk up looking for go.mod
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

func ensureGomarkdoc() error {
	if _, err := exec.LookPath("gomarkdoc"); err == nil {
		return nil
	}

	fmt.Println("Installing gomarkdoc...")
	cmd := exec.Command("go", "install", "github.com/princjef/gomarkdoc/cmd/gomarkdoc@latest")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("Warning: %s does not exist, skipping copy\n", src)
			return nil
		}
		return err
	}

	if !srcInfo.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			return os.MkdirAll(dstPath, 0755)
		}

		return copyFile(path, dstPath)
	})
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}

func writeAPICategoryFile(apiDir string) error {
	content := `{
  "label": "API Reference",
  "position": 100,
  "link": {
    "type": "generated-index",
    "description": "API documentation generated from Go source code."
  }
}
`
	return os.WriteFile(filepath.Join(apiDir, "_category_.json"), []byte(content), 0644)
}

func generatePackageDocs(root string, pkg Package, apiDir string) error {
	pkgPath := "./" + pkg.Path

	cmd := exec.Command("gomarkdoc", pkgPath)
	cmd.Dir = root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Log warning but don't fail; docs for the remaining packages are
		// still worth generating.
		fmt.Printf("  Warning: skipping %s (gomarkdoc error)\n", pkg.Name)
		return nil
	}

	content := stdout.String()
	if content == "" {
		fmt.Printf("  Warning: no documentation generated for %s\n", pkg.Name)
		return nil
	}

	content = processMarkdown(content)

	frontmatter := fmt.Sprintf(`---
id: %s
title: %s
sidebar_position: %d
---

`, pkg.Name, pkg.Title, pkg.Position)

	outputPath := filepath.Join(apiDir, pkg.Name+".md")
	return os.WriteFile(outputPath, []byte(frontmatter+content), 0644)
}

func processMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	skipNext := false
	inIndex := false

	for i, line := range lines {
		// Skip the first header line since we add our own title
		if i == 0 && strings.HasPrefix(line, "# ") {
			continue
		}

		// Skip the Index section (starts with "## Index", ends at next ## heading)
		if line == "## Index" {
			inIndex = true
			continue
		}
		if inIndex {
			if strings.HasPrefix(line, "## ") {
				inIndex = false
				// Fall through to process this line
			} else {
				continue
			}
		}

		// Skip "import" lines that show the import path
		if strings.HasPrefix(line, "```go") && i+1 < len(lines) && strings.Contains(lines[i+1], "import") {
			skipNext = true
		}
		if skipNext && line == "```" {
			skipNext = false
			continue
		}
		if skipNext {
			continue
		}

		// Convert <details><summary>Example</summary> to **Example:**
		if strings.HasPrefix(line, "<details><summary>") && strings.HasSuffix(line, "</summary>") {
			summary := line[len("<details><summary>") : len(line)-len("</summary>")]
			result = append(result, "")
			result = append(result, fmt.Sprintf("**%s:**", summary))
			result = append(result, "")
			continue
		}

		// Skip </details>, <p>, and </p> tags from gomarkdoc
		if line == "</details>" || line == "<p>" || line == "</p>" {
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
