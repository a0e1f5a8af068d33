// Package archive iterates the newline-delimited records stored in the
// members of a zip archive.
package archive

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
)

// MaxLineSize bounds a single record line.
const MaxLineSize = 16 * 1024 * 1024

// Scanner yields (member, line) pairs from a zip archive, members in the
// archive's listing order and lines in file order. It is single-pass: once
// Next returns false the archive must be reopened to scan again.
type Scanner struct {
	// OnMember, if set, is called each time a new member is opened.
	OnMember func(name string)

	rc      *zip.ReadCloser
	files   []*zip.File
	next    int
	member  string
	cur     io.ReadCloser
	lines   *bufio.Scanner
	lineNo  int
	members int
	err     error
	closed  bool
}

// Open opens the archive at path.
func Open(path string) (*Scanner, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	return &Scanner{rc: rc, files: rc.File}, nil
}

// Next advances to the next line. It returns false at the end of the archive
// or on the first error, which Err then reports.
func (s *Scanner) Next() bool {
	if s.err != nil || s.closed {
		return false
	}
	for {
		if s.lines != nil {
			if s.lines.Scan() {
				s.lineNo++
				return true
			}
			if err := s.lines.Err(); err != nil {
				s.fail(fmt.Errorf("failed to read %s after line %d: %w", s.member, s.lineNo, err))
				return false
			}
			if err := s.closeMember(); err != nil {
				s.fail(err)
				return false
			}
		}

		if s.next >= len(s.files) {
			return false
		}
		f := s.files[s.next]
		s.next++
		if f.FileInfo().IsDir() {
			continue
		}
		if err := s.openMember(f); err != nil {
			s.fail(err)
			return false
		}
	}
}

func (s *Scanner) openMember(f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open member %s: %w", f.Name, err)
	}
	s.cur = r
	s.member = f.Name
	s.lineNo = 0
	s.members++
	s.lines = bufio.NewScanner(r)
	s.lines.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	if s.OnMember != nil {
		s.OnMember(f.Name)
	}
	return nil
}

func (s *Scanner) closeMember() error {
	s.lines = nil
	if s.cur == nil {
		return nil
	}
	err := s.cur.Close()
	s.cur = nil
	if err != nil {
		return fmt.Errorf("failed to close member %s: %w", s.member, err)
	}
	return nil
}

func (s *Scanner) fail(err error) {
	s.err = err
	_ = s.closeMember() // the first error wins
}

// Line returns the current line. The slice is only valid until the next call
// to Next.
func (s *Scanner) Line() []byte {
	if s.lines == nil {
		return nil
	}
	return s.lines.Bytes()
}

// Member returns the name of the member the current line came from.
func (s *Scanner) Member() string { return s.member }

// LineNumber returns the 1-based line number within the current member.
func (s *Scanner) LineNumber() int { return s.lineNo }

// Members returns how many members have been opened so far.
func (s *Scanner) Members() int { return s.members }

// Err returns the first error encountered while scanning.
func (s *Scanner) Err() error { return s.err }

// Close releases the member reader and the archive. It is safe to call more
// than once.
func (s *Scanner) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	memberErr := s.closeMember()
	if err := s.rc.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}
	return memberErr
}
