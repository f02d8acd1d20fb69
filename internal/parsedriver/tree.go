package parsedriver

import "github.com/plaaxer/lexparsegen/internal/grammar"

// ParseTree is the generic result of a successful parse: either a
// TerminalNode (one matched token) or a NonTerminalNode (a reduced
// production with its children in production-body order).
type ParseTree interface {
	isParseTree()
	Symbol() grammar.Symbol
}

// TerminalNode wraps one shifted token.
type TerminalNode struct {
	Token Token
}

func (*TerminalNode) isParseTree() {}

// Symbol returns the terminal's token class.
func (n *TerminalNode) Symbol() grammar.Symbol { return n.Token.Symbol }

// NonTerminalNode is one completed reduction.
type NonTerminalNode struct {
	Head     grammar.Symbol
	Children []ParseTree
}

func (*NonTerminalNode) isParseTree() {}

// Symbol returns the production's head.
func (n *NonTerminalNode) Symbol() grammar.Symbol { return n.Head }
