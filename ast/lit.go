package ast

type (
	// Literal covers numbers, strings, booleans, null and regular
	// expressions; Raw preserves the source spelling.
	Literal struct {
		NodeBase
		Value any
		Raw   string
		Regex *Regex
	}

	Regex struct {
		Pattern string
		Flags   string
	}

	TemplateLiteral struct {
		NodeBase
		Quasis      []*TemplateElement
		Expressions []Expr
	}

	TemplateElement struct {
		NodeBase
		Raw    string
		Cooked string
		Tail   bool
	}
)

func (*Literal) _expr()         {}
func (*TemplateLiteral) _expr() {}
