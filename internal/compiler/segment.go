package compiler

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Block is one segmented unit of rules text, treated as a single ability
// during compilation. Text keeps the separator whitespace of the following
// boundary, so concatenating all blocks reconstructs the scanned text.
type Block struct {
	Text   string
	Offset int // byte offset into the scanned text, for diagnostics
}

// BlockScanner splits rules text into ability blocks. A boundary is
// sentence-ending punctuation followed by whitespace and then an uppercase
// letter or an opening brace (so cost symbols like "{T}:" start a block).
// A whitespace run containing a line break never splits: embedded line
// breaks are keyword lists that belong to the enclosing block.
//
// The scanner is consumed once, in order, like bufio.Scanner.
type BlockScanner struct {
	text string
	pos  int
	cur  Block
}

// NewBlockScanner returns a scanner over text. Empty or whitespace-only
// text yields no blocks.
func NewBlockScanner(text string) *BlockScanner {
	if strings.TrimSpace(text) == "" {
		return &BlockScanner{}
	}
	return &BlockScanner{text: text}
}

// Scan advances to the next block. It returns false when the text is
// exhausted.
func (s *BlockScanner) Scan() bool {
	if s.pos >= len(s.text) {
		return false
	}
	end := s.nextBoundary()
	s.cur = Block{Text: s.text[s.pos:end], Offset: s.pos}
	s.pos = end
	return true
}

// Block returns the block found by the last call to Scan.
func (s *BlockScanner) Block() Block { return s.cur }

func (s *BlockScanner) nextBoundary() int {
	t := s.text
	for i := s.pos; i < len(t); i++ {
		switch t[i] {
		case '.', '!', '?':
		default:
			continue
		}
		j := i + 1
		lineBreak := false
		for j < len(t) {
			r, size := utf8.DecodeRuneInString(t[j:])
			if !unicode.IsSpace(r) {
				break
			}
			if r == '\n' || r == '\r' {
				lineBreak = true
			}
			j += size
		}
		if j == i+1 || lineBreak || j >= len(t) {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(t[j:]); unicode.IsUpper(r) || r == '{' {
			return j
		}
	}
	return len(t)
}
