package playerlog

import (
	"bufio"
	"io"
	"strings"
)

// interfaceTokenIndex is the position of the interface name on every log
// line (time, host, robot, interface, ...).
const interfaceTokenIndex = 3

// InterfaceScanner streams the lines of one interface out of a
// multiplexed log. It keeps a single line buffered at a time so large
// logs never have to fit in memory, and is consumed in one forward pass.
type InterfaceScanner struct {
	iface   string
	scanner *bufio.Scanner
	line    string
	err     error
}

// NewInterfaceScanner filters lines read from r. The caller owns the
// reader and closes it after the single pass.
func NewInterfaceScanner(r io.Reader, iface string) *InterfaceScanner {
	sc := bufio.NewScanner(r)
	// Laser lines carry hundreds of numeric columns; the default 64 KiB
	// token limit is too tight for some recorders.
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &InterfaceScanner{iface: iface, scanner: sc}
}

// Scan advances to the next matching line, returning false at end of
// stream or on read error. A line matches when its 4th whitespace token
// equals the interface name; shorter lines are skipped.
func (s *InterfaceScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.scanner.Scan() {
		line := s.scanner.Text()
		fields := strings.Fields(line)
		if len(fields) <= interfaceTokenIndex {
			continue
		}
		if fields[interfaceTokenIndex] == s.iface {
			s.line = line
			return true
		}
	}
	s.err = s.scanner.Err()
	return false
}

// Text returns the current matching line.
func (s *InterfaceScanner) Text() string { return s.line }

// Err reports the first read error encountered, if any.
func (s *InterfaceScanner) Err() error { return s.err }
