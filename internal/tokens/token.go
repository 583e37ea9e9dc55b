package tokens

import "fmt"

// Token is a single lexeme scanned from source. Literal holds a float64 for
// NUMBER, a string for STRING and nil otherwise.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}
