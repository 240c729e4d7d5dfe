package zypper

import (
	"regexp"
	"strings"

	"go.trai.ch/kmpinstall/internal/core/domain"
)

// headerPattern matches the line zypper prints above each transaction block.
// The capture selects which plan list the block feeds.
var headerPattern = regexp.MustCompile(
	`^The following .*packages? (?:is|are) going to be (installed|upgraded|downgraded|REMOVED):`)

// isBlockHeader reports whether line opens a transaction block and whether
// that block announces removals.
func isBlockHeader(line string) (removal, ok bool) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return false, false
	}
	return m[1] == "REMOVED", true
}

// isBlank reports whether line closes the current block.
func isBlank(line string) bool {
	return line == ""
}

// indentOf counts the leading whitespace of a line.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

type parserState int

const (
	stateScanning parserState = iota
	stateInBlock
)

// Parser assembles a transaction plan from zypper's verbose install output.
// It consumes whole lines only; chunk reassembly is the runner's concern.
//
// The first package line of a block fixes the block's indentation. Lines
// indented deeper than that are continuations of the record above them,
// lines at the block indentation start a new record, a blank line closes
// the block.
type Parser struct {
	infix   string
	state   parserState
	removal bool
	indent  int
	current *domain.Package
	plan    domain.Plan
}

// NewParser creates a Parser that keeps only packages carrying the given
// kernel module package infix.
func NewParser(infix string) *Parser {
	return &Parser{infix: infix}
}

// Feed classifies one line of manager output. Trailing whitespace is
// stripped before classification.
func (p *Parser) Feed(line string) {
	line = strings.TrimRight(line, " \t\r")

	switch p.state {
	case stateScanning:
		if removal, ok := isBlockHeader(line); ok {
			p.removal = removal
			p.indent = -1
			p.state = stateInBlock
		}
	case stateInBlock:
		p.feedBlock(line)
	}
}

func (p *Parser) feedBlock(line string) {
	if isBlank(line) {
		p.commit()
		p.state = stateScanning
		return
	}

	indent := indentOf(line)
	if p.indent < 0 {
		p.indent = indent
	}
	if indent > p.indent {
		// Continuation of the record above. Records discarded as non-KMP
		// swallow their continuations too.
		if p.current != nil {
			detail := strings.TrimSpace(line)
			p.current.Details = append(p.current.Details, detail)
			if p.current.Repo == "" {
				p.current.Repo = detail
			}
		}
		return
	}

	p.commit()
	p.current = parsePackageLine(line, p.infix)
}

// parsePackageLine splits a package line into "name version arch
// [repository]". An upgrade is printed as "old -> new" inside the version
// position; only the new version is kept. The repository is whatever text
// follows the architecture. Names without the infix yield nil.
func parsePackageLine(line, infix string) *domain.Package {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil
	}

	name := fields[0]
	version := fields[1]
	rest := fields[2:]
	if len(rest) >= 2 && rest[0] == "->" {
		version += " -> " + rest[1]
		rest = rest[2:]
	}
	if len(rest) == 0 {
		return nil
	}
	arch := rest[0]
	rest = rest[1:]

	pkg := domain.NewPackage(name, version, arch, infix)
	if pkg == nil {
		return nil
	}
	if len(rest) > 0 {
		repo := strings.Join(rest, " ")
		pkg.Details = append(pkg.Details, repo)
		pkg.Repo = repo
	}
	return pkg
}

func (p *Parser) commit() {
	if p.current == nil {
		return
	}
	if p.removal {
		p.plan.Remove = append(p.plan.Remove, p.current)
	} else {
		p.plan.Install = append(p.plan.Install, p.current)
	}
	p.current = nil
}

// Flush closes a block the stream ended inside of.
func (p *Parser) Flush() {
	p.commit()
	p.state = stateScanning
}

// Plan returns the accumulated plan.
func (p *Parser) Plan() *domain.Plan {
	return &p.plan
}
