package parser

import "github.com/reusee/monkey/token"

type precedence int

const (
	precLowest      precedence = iota
	precEquals                 // == !=
	precLessGreater            // < >
	precSum                    // + -
	precProduct                // * /
	precPrefix                 // -x !x
	precCall                   // f(x)
)

var precedences = map[token.Kind]precedence{
	token.Eq:       precEquals,
	token.NotEq:    precEquals,
	token.LT:       precLessGreater,
	token.GT:       precLessGreater,
	token.Plus:     precSum,
	token.Minus:    precSum,
	token.Asterisk: precProduct,
	token.Slash:    precProduct,
	token.LParen:   precCall,
}

func precedenceOf(kind token.Kind) precedence {
	if p, ok := precedences[kind]; ok {
		return p
	}
	return precLowest
}
