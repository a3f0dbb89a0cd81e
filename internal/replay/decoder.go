package replay

import (
	"strings"

	"github.com/hastyy/collections/internal/assert"
)

const commentPrefix = "#"

// Decoder turns script lines into Commands for a single Kind.
// Ops are matched case-insensitively and arguments are separated by whitespace.
type Decoder struct {
	kind    Kind
	grammar map[string]int
}

func NewDecoder(kind Kind) *Decoder {
	assert.NonZero(kind, "Kind can't be empty")

	grammar, ok := grammars[kind]
	assert.OK(ok, "no grammar for kind %q", kind)

	return &Decoder{
		kind:    kind,
		grammar: grammar,
	}
}

// Decode parses a single line.
// Returns ErrSkip for blank lines and comments.
// Returns Error with ErrCodeBadFormat for an op the kind does not support or the wrong number of arguments.
func (d *Decoder) Decode(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return Command{}, ErrSkip
	}

	fields := strings.Fields(line)
	assert.NonEmpty(fields, "no fields in non-blank line %q", line)

	op := strings.ToLower(fields[0])
	args := fields[1:]

	arity, ok := d.grammar[op]
	if !ok {
		return Command{}, BadFormatErrorf("unknown op %q for %s", fields[0], d.kind)
	}
	if len(args) != arity {
		return Command{}, BadFormatErrorf("%s expects %d argument(s), got %d", op, arity, len(args))
	}

	if len(args) == 0 {
		args = nil
	}
	return Command{Op: op, Args: args}, nil
}
