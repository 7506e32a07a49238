package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a malformed line in an edge-list file read by
// ReadEdgeList, naming the line number and the offending text.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("graph: parse error at line %d (%q): %s", e.Line, e.Text, e.Msg)
}

// ReadEdgeList parses the edge-list file format: lines starting with '#' or
// '%' are comments, every other line is "u v" in decimal; loops are dropped
// and duplicate edges (after canonicalising u <= v) collapsed.
// Returns a Graph whose vertex count covers every endpoint of a kept
// (non-loop) edge; an index that appears only in a loop line is not counted.
func ReadEdgeList(r io.Reader) (*Graph, error) {
	g := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '#' || line[0] == '%' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &ParseError{Line: lineNo, Text: line, Msg: "expected two vertex indices"}
		}
		u, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Msg: "invalid vertex index " + fields[0]}
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Msg: "invalid vertex index " + fields[1]}
		}

		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		if g.HasEdge(u, v) {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Msg: err.Error()}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
