package ast

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrEmptyTree is returned by [Parse] when the input contains no content
// lines after header and blank lines are discarded.
var ErrEmptyTree = errors.New("no nodes in input")

// headerDelimiter marks decorative banner lines at the top of a dump,
// e.g. "=== Abstract Syntax Tree ===".
const headerDelimiter = "==="

// sourcePrefix marks provenance lines emitted by the compiler,
// e.g. "Source: examples/fib.ppx".
const sourcePrefix = "Source:"

// record is one parsed content line before tree reconstruction.
type record struct {
	kind  string
	value string
	depth int
}

// ParseFile reads and parses the AST dump at path.
func ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return root, nil
}

// Parse reads an AST dump from r and reconstructs the node tree.
//
// A leading run of blank lines, "===" banner lines, and "Source:" provenance
// lines is discarded; scanning stops at the first real content line. Blank
// lines after that point are skipped individually.
//
// Reconstruction walks the records once with a stack of open ancestors. The
// first record becomes the root regardless of its depth. Every later record
// pops ancestors whose depth is >= its own and attaches to the surviving
// stack top; attachment requires a strictly smaller ancestor depth, so the
// indentation unit never matters, only relative ordering.
//
// A record that pops the stack empty (its depth is <= every open ancestor's,
// including the root's) is pushed as an open ancestor but never attached to
// the tree. Such lines vanish from the output silently; this matches the
// tool's long-standing contract for malformed dumps and is deliberately not
// an error.
//
// Returns [ErrEmptyTree] when no content lines exist.
func Parse(r io.Reader) (*Node, error) {
	records, err := scan(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyTree
	}

	root := NewNode(records[0].kind, records[0].value, records[0].depth)
	stack := []*Node{root}

	for _, rec := range records[1:] {
		cur := NewNode(rec.kind, rec.value, rec.depth)

		for len(stack) > 0 && stack[len(stack)-1].Depth >= cur.Depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			stack[len(stack)-1].AppendChild(cur)
		}
		stack = append(stack, cur)
	}

	return root, nil
}

// scan reads lines from r and returns the parsed content records in order.
func scan(r io.Reader) ([]record, error) {
	var records []record
	inHeader := true

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)

		if inHeader {
			if trimmed == "" || strings.HasPrefix(trimmed, headerDelimiter) || strings.HasPrefix(trimmed, sourcePrefix) {
				continue
			}
			inHeader = false
		}
		if trimmed == "" {
			continue
		}

		records = append(records, parseLine(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return records, nil
}

// parseLine splits one content line into a record.
//
// Depth is the count of leading whitespace runes; tabs count as a single
// rune, not a tab stop. The remainder splits on the first colon into kind
// and value, both trimmed. Without a colon the whole content is the kind.
func parseLine(line string) record {
	depth := leadingWhitespace(line)
	content := strings.TrimSpace(line)

	kind, value, found := strings.Cut(content, ":")
	if !found {
		return record{kind: strings.TrimSpace(content), depth: depth}
	}
	return record{
		kind:  strings.TrimSpace(kind),
		value: strings.TrimSpace(value),
		depth: depth,
	}
}

// leadingWhitespace counts the whitespace runes before the first
// non-whitespace rune of line. Tabs count as one rune each; they are not
// expanded to tab stops.
func leadingWhitespace(line string) int {
	count := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		count++
	}
	return count
}
