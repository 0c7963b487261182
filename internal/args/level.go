package args

import "strings"

// DecreaseLevel strips one level of nesting from a command. A "@name" token
// opens a block that is dropped; a "@@name" token opens a block that is kept
// and written as "@name". Every kept token is followed by a space.
//
//	DecreaseLevel("@new teste @@new opencv @@id 0") == "@new opencv @id 0 "
func DecreaseLevel(src string) string {
	out, _ := decrease(src)
	return out
}

// Decrease is DecreaseLevel on Text that also carries the values of the kept
// placeholders, so the nested command binds them at their new positions.
func (a *Args) Decrease() Args {
	if a == nil {
		return Args{}
	}
	text, kept := decrease(a.Text)
	child := Args{Text: text}
	for i, idx := range kept {
		if i >= MaxArgs {
			break
		}
		child.Arg[i] = a.slot(idx)
	}
	return child
}

// decrease returns the stripped text and the positions of the placeholders
// it kept.
func decrease(src string) (string, []int) {
	var out strings.Builder
	var kept []int
	keep := false
	count := 0
	s := NewScanner(src)
	for s.Scan() {
		tok := s.Token()
		if tok[0] == '@' {
			keep = len(tok) > 1 && tok[1] == '@'
			if keep {
				out.WriteString(tok[1:])
				out.WriteByte(' ')
			}
			continue
		}
		if tok[0] == '%' {
			if keep {
				kept = append(kept, count)
			}
			count++
		}
		if keep {
			out.WriteString(tok)
			out.WriteByte(' ')
		}
	}
	return out.String(), kept
}
