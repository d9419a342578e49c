package newick

import "fmt"

// itemType classifies a lexeme of Newick text.
type itemType int

const (
	itemPunct    itemType = iota // one of ( ) , ;
	itemSpace                    // run of blanks or newlines
	itemLeaf                     // label in leaf position: after '(' or ',' or at the start
	itemInternal                 // label right after ')'
	itemLength                   // ':' and the branch length that follows
)

const (
	descStart     = '('
	descEnd       = ')'
	descDelimiter = ','
	terminal      = ';'
	lengthStart   = ':'
	quote         = '\''
)

// item is one lexeme; val is the exact source text.
type item struct {
	typ itemType
	val string
}

// lex splits s into items. Concatenating every val gives back s, so
// callers rewrite text by replacing selected items only.
//
// Complexity: O(len(s)).
func lex(s string) ([]item, error) {
	items := make([]item, 0, len(s)/2+1)
	prev := byte(descStart) // the start of the text is a leaf position

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == descStart || c == descEnd || c == descDelimiter || c == terminal:
			items = append(items, item{itemPunct, s[i : i+1]})
			prev = c
			i++
		case isBlank(c):
			j := i
			for j < len(s) && isBlank(s[j]) {
				j++
			}
			items = append(items, item{itemSpace, s[i:j]})
			i = j
		case c == lengthStart:
			j := i + 1
			for j < len(s) && !isDelim(s[j]) {
				j++
			}
			items = append(items, item{itemLength, s[i:j]})
			prev = lengthStart
			i = j
		default:
			j, err := scanLabel(s, i)
			if err != nil {
				return nil, err
			}
			typ := itemLeaf
			if prev == descEnd {
				typ = itemInternal
			}
			items = append(items, item{typ, s[i:j]})
			prev = 'a'
			i = j
		}
	}

	return items, nil
}

// scanLabel returns the end of the label starting at i. Quoted labels run
// to the closing quote; a doubled quote inside stands for a literal quote.
func scanLabel(s string, i int) (int, error) {
	if s[i] != quote {
		j := i
		for j < len(s) && !isDelim(s[j]) && s[j] != lengthStart {
			j++
		}
		return j, nil
	}

	for j := i + 1; j < len(s); j++ {
		if s[j] != quote {
			continue
		}
		if j+1 < len(s) && s[j+1] == quote {
			j++
			continue
		}
		return j + 1, nil
	}

	return 0, fmt.Errorf("unterminated quoted label at offset %d: %w", i, ErrParse)
}

func isDelim(c byte) bool {
	return c == descStart || c == descEnd || c == descDelimiter || c == terminal || isBlank(c)
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
