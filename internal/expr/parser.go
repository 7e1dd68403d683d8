package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/chriserin/xt/internal/value"
)

var keywordLiterals = map[string]value.Value{
	"true":  value.Bool(true),
	"false": value.Bool(false),
	"null":  value.Null{},
}

type unaryExpr struct {
	Pos lexer.Position

	Op      string       `( @( "-" | "+" | "!" )`
	Operand *unaryExpr   `  @@ )`
	Postfix *postfixExpr `| @@`
}

type postfixExpr struct {
	Primary *primaryExpr  `@@`
	Members []*memberExpr `@@*`
}

type memberExpr struct {
	Pos lexer.Position

	Name  *string    `  "." @Ident`
	Index *unaryExpr `| "[" @@ "]"`
}

type primaryExpr struct {
	Pos lexer.Position

	Number *string     `  @Number`
	String *string     `| @String`
	Ident  *string     `| @Ident`
	Array  *arrayExpr  `| @@`
	Object *objectExpr `| @@`
	Paren  *unaryExpr  `| "(" @@ ")"`
}

type arrayExpr struct {
	Pos lexer.Position

	Open  string       `@"["`
	Elems []*unaryExpr `( @@ ( "," @@ )* ","? )? "]"`
}

type objectExpr struct {
	Pos lexer.Position

	Open  string          `@"{"`
	Props []*propertyExpr `( @@ ( "," @@ )* ","? )? "}"`
}

type propertyExpr struct {
	Pos lexer.Position

	Computed *unaryExpr `( "[" @@ "]"`
	Ident    *string    `| @Ident`
	String   *string    `| @String`
	Number   *string    `| @Number )`
	Value    *unaryExpr `( ":" @@ )?`
}

var grammar = participle.MustBuild[unaryExpr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses src as exactly one expression.
func Parse(src string) (Node, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &SyntaxError{Pos: len(src), Msg: "Unexpected end of input"}
	}
	tree, err := grammar.ParseString("", src)
	if err != nil {
		return nil, syntaxError(err)
	}
	return tree.node()
}

// Eval parses src and evaluates it against scope.
func Eval(src string, scope *value.Object) (value.Value, error) {
	n, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return n.Eval(scope)
}

func syntaxError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &SyntaxError{Pos: perr.Position().Offset, Msg: perr.Message()}
	}
	return &SyntaxError{Msg: err.Error()}
}

func (u *unaryExpr) node() (Node, error) {
	if u.Postfix != nil {
		return u.Postfix.node()
	}
	x, err := u.Operand.node()
	if err != nil {
		return nil, err
	}
	return &Unary{At: u.Pos.Offset, Op: u.Op, X: x}, nil
}

func (p *postfixExpr) node() (Node, error) {
	x, err := p.Primary.node()
	if err != nil {
		return nil, err
	}
	for _, m := range p.Members {
		if m.Name != nil {
			x = &Member{At: m.Pos.Offset, X: x, Name: *m.Name}
			continue
		}
		index, err := m.Index.node()
		if err != nil {
			return nil, err
		}
		x = &Member{At: m.Pos.Offset, X: x, Index: index}
	}
	return x, nil
}

func (p *primaryExpr) node() (Node, error) {
	at := p.Pos.Offset
	switch {
	case p.Number != nil:
		n, err := parseNumber(*p.Number)
		if err != nil {
			return nil, &SyntaxError{Pos: at, Msg: fmt.Sprintf("Invalid number '%s'", *p.Number)}
		}
		return &Literal{At: at, Value: value.Number(n)}, nil
	case p.String != nil:
		s, err := unquote(*p.String)
		if err != nil {
			return nil, &SyntaxError{Pos: at, Msg: err.Error()}
		}
		return &Literal{At: at, Value: value.String(s)}, nil
	case p.Ident != nil:
		if v, ok := keywordLiterals[*p.Ident]; ok {
			return &Literal{At: at, Value: v}, nil
		}
		return &Ident{At: at, Name: *p.Ident}, nil
	case p.Array != nil:
		return p.Array.node()
	case p.Object != nil:
		return p.Object.node()
	}
	return p.Paren.node()
}

func (a *arrayExpr) node() (Node, error) {
	arr := &ArrayLit{At: a.Pos.Offset, Elems: make([]Node, 0, len(a.Elems))}
	for _, e := range a.Elems {
		n, err := e.node()
		if err != nil {
			return nil, err
		}
		arr.Elems = append(arr.Elems, n)
	}
	return arr, nil
}

func (o *objectExpr) node() (Node, error) {
	obj := &ObjectLit{At: o.Pos.Offset}
	for _, p := range o.Props {
		prop, err := p.property()
		if err != nil {
			return nil, err
		}
		obj.Props = append(obj.Props, prop)
	}
	return obj, nil
}

func (p *propertyExpr) property() (Property, error) {
	var prop Property
	at := p.Pos.Offset

	switch {
	case p.Ident != nil:
		prop.Key = *p.Ident
		// {name} is shorthand for {name: name}.
		if p.Value == nil {
			if _, ok := keywordLiterals[prop.Key]; ok {
				return prop, &SyntaxError{Pos: at, Msg: fmt.Sprintf("Unexpected token '%s'", prop.Key)}
			}
			prop.Value = &Ident{At: at, Name: prop.Key}
			return prop, nil
		}
	case p.String != nil:
		s, err := unquote(*p.String)
		if err != nil {
			return prop, &SyntaxError{Pos: at, Msg: err.Error()}
		}
		prop.Key = s
	case p.Number != nil:
		n, err := parseNumber(*p.Number)
		if err != nil {
			return prop, &SyntaxError{Pos: at, Msg: fmt.Sprintf("Invalid number '%s'", *p.Number)}
		}
		prop.Key = value.ToString(value.Number(n))
	default:
		key, err := p.Computed.node()
		if err != nil {
			return prop, err
		}
		prop.Computed = key
	}

	if p.Value == nil {
		return prop, &SyntaxError{Pos: at, Msg: "Unexpected token, expected ':'"}
	}
	v, err := p.Value.node()
	if err != nil {
		return prop, err
	}
	prop.Value = v
	return prop, nil
}
