package ast

type Identifier struct {
	NodeBase
	Name string
}

func (*Identifier) _expr()    {}
func (*Identifier) _pattern() {}
