package args

// TokenMax is the token length used by the binder. Longer tokens are
// truncated.
const TokenMax = 512

// FlexDiv scans the next token of text starting at *cursor and advances the
// cursor past what it consumed. Tokens are separated by div; a single-quote
// pair groups characters, delimiters included, into one token and the quotes
// themselves are dropped. Newlines are dropped everywhere. An unterminated
// quote runs to the end of text.
//
// At most limit bytes are kept per token (limit <= 0 keeps everything); the rest
// are dropped silently. When a delimiter ends the token the cursor is left on
// that delimiter.
//
// The boolean is false when the scan reached the end of text without
// collecting a character; the cursor is then len(text) and further calls are
// no-ops.
func FlexDiv(text string, cursor *int, limit int, div byte) (string, bool) {
	i := *cursor
	if i < 0 {
		i = 0
	}
	if i > len(text) {
		i = len(text)
	}

	var tok []byte
	quoted := false
	for ; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			continue
		}
		if quoted {
			if c == '\'' {
				quoted = false
				continue
			}
		} else {
			if c == '\'' {
				quoted = true
				continue
			}
			if c == div {
				if len(tok) > 0 {
					break
				}
				continue
			}
		}
		if limit <= 0 || len(tok) < limit {
			tok = append(tok, c)
		}
	}

	*cursor = i
	return string(tok), len(tok) > 0
}

// Flex is FlexDiv with a space delimiter.
func Flex(text string, cursor *int, limit int) (string, bool) {
	return FlexDiv(text, cursor, limit, ' ')
}

// Scanner walks the tokens of a command text.
//
//	s := args.NewScanner("@name 'two words' @id 10")
//	for s.Scan() {
//		fmt.Println(s.Token())
//	}
type Scanner struct {
	text   string
	cursor int
	max    int
	div    byte
	token  string
}

// ScanOption configures a Scanner.
type ScanOption func(*Scanner)

// WithDelimiter splits tokens on div instead of a space.
func WithDelimiter(div byte) ScanOption {
	return func(s *Scanner) {
		s.div = div
	}
}

// WithTokenMax caps the characters kept per token. Zero or less keeps all.
func WithTokenMax(n int) ScanOption {
	return func(s *Scanner) {
		s.max = n
	}
}

// NewScanner returns a space-delimited scanner over text capped at TokenMax.
func NewScanner(text string, opts ...ScanOption) *Scanner {
	s := &Scanner{text: text, max: TokenMax, div: ' '}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan advances to the next token and reports whether one was found.
func (s *Scanner) Scan() bool {
	tok, ok := FlexDiv(s.text, &s.cursor, s.max, s.div)
	s.token = tok
	return ok
}

// Token returns the token found by the last Scan.
func (s *Scanner) Token() string {
	return s.token
}

// Cursor returns the byte offset the next Scan starts from.
func (s *Scanner) Cursor() int {
	return s.cursor
}

// Tokens returns every token of text.
func Tokens(text string, opts ...ScanOption) []string {
	out := make([]string, 0, 8)
	s := NewScanner(text, opts...)
	for s.Scan() {
		out = append(out, s.Token())
	}
	return out
}
