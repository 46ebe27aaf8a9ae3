package transform

import "strings"

// blacklistedBytes maps control bytes that can corrupt a terminal to
// bracketed placeholders. See
// https://en.wikipedia.org/wiki/ANSI_escape_code#C0_control_codes for some
// of those codes.
//
// Tab (0x09) and line feed (0x0A) are kept because they cannot by
// themselves overwrite data on a well-implemented terminal emulator screen.
var blacklistedBytes = []struct {
	b           byte
	replacement string
}{
	{0x07, "<BEL>"},
	{0x08, "<BS>"},
	{0x0C, "<FF>"},
	{0x0D, "<CR>"},
	{0x1B, "<ESC>"},
	{0x7F, "<DEL>"},
}

// Sanitizer neutralizes terminal control bytes. It is always the first
// stage of the chain and cannot be disabled.
type Sanitizer struct {
	replacer *strings.Replacer
}

// NewSanitizer builds the replacement table once.
func NewSanitizer() *Sanitizer {
	pairs := make([]string, 0, len(blacklistedBytes)*2)
	for _, e := range blacklistedBytes {
		pairs = append(pairs, string(e.b), e.replacement)
	}
	return &Sanitizer{replacer: strings.NewReplacer(pairs...)}
}

// Priority implements Transformer.
func (*Sanitizer) Priority() int { return 9999 }

// Transform implements Transformer. It is idempotent: the placeholders it
// produces contain no blacklisted bytes.
func (s *Sanitizer) Transform(input string) string {
	return s.replacer.Replace(input)
}
