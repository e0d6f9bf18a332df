package dump

import (
	"fmt"
	"io"
	"strconv"

	"github.com/reusee/monkey/ast"
	"github.com/reusee/monkey/token"
	"gopkg.in/yaml.v3"
)

// Encode writes node as a YAML tree, one mapping per AST node.
func Encode(w io.Writer, node ast.Node) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(Node(node)); err != nil {
		return fmt.Errorf("encode ast: %w", err)
	}
	return encoder.Close()
}

func Node(node ast.Node) *yaml.Node {
	switch node := node.(type) {

	case nil:
		return null()

	case *ast.Program:
		ret := object("Program", node.Pos())
		add(ret, "statements", statements(node.Statements))
		return ret

	case *ast.LetStatement:
		ret := object("LetStatement", node.Pos())
		add(ret, "name", Node(identOrNil(node.Name)))
		add(ret, "value", Node(node.Value))
		return ret

	case *ast.ReturnStatement:
		ret := object("ReturnStatement", node.Pos())
		add(ret, "value", Node(node.ReturnValue))
		return ret

	case *ast.ExpressionStatement:
		ret := object("ExpressionStatement", node.Pos())
		add(ret, "expression", Node(node.Expression))
		return ret

	case *ast.BlockStatement:
		if node == nil {
			return null()
		}
		ret := object("BlockStatement", node.Pos())
		add(ret, "statements", statements(node.Statements))
		return ret

	case *ast.Identifier:
		if node == nil {
			return null()
		}
		ret := object("Identifier", node.Pos())
		add(ret, "value", str(node.Value))
		return ret

	case *ast.IntegerLiteral:
		ret := object("IntegerLiteral", node.Pos())
		add(ret, "value", scalar("!!int", strconv.FormatInt(node.Value, 10)))
		return ret

	case *ast.Boolean:
		ret := object("Boolean", node.Pos())
		add(ret, "value", scalar("!!bool", strconv.FormatBool(node.Value)))
		return ret

	case *ast.PrefixExpression:
		ret := object("PrefixExpression", node.Pos())
		add(ret, "operator", str(node.Operator))
		add(ret, "right", Node(node.Right))
		return ret

	case *ast.InfixExpression:
		ret := object("InfixExpression", node.Pos())
		add(ret, "left", Node(node.Left))
		add(ret, "operator", str(node.Operator))
		add(ret, "right", Node(node.Right))
		return ret

	case *ast.IfExpression:
		ret := object("IfExpression", node.Pos())
		add(ret, "condition", Node(node.Condition))
		add(ret, "consequence", Node(node.Consequence))
		if node.Alternative != nil {
			add(ret, "alternative", Node(node.Alternative))
		}
		return ret

	case *ast.FunctionLiteral:
		ret := object("FunctionLiteral", node.Pos())
		params := sequence()
		for _, param := range node.Parameters {
			params.Content = append(params.Content, str(param.Value))
		}
		add(ret, "parameters", params)
		add(ret, "body", Node(node.Body))
		return ret

	case *ast.CallExpression:
		ret := object("CallExpression", node.Pos())
		add(ret, "function", Node(node.Function))
		args := sequence()
		for _, arg := range node.Arguments {
			args.Content = append(args.Content, Node(arg))
		}
		add(ret, "arguments", args)
		return ret

	}

	panic(fmt.Errorf("unknown node type: %T", node))
}

func identOrNil(ident *ast.Identifier) ast.Node {
	if ident == nil {
		return nil
	}
	return ident
}

func statements(stmts []ast.Statement) *yaml.Node {
	ret := sequence()
	for _, stmt := range stmts {
		ret.Content = append(ret.Content, Node(stmt))
	}
	return ret
}

func object(kind string, pos token.Pos) *yaml.Node {
	ret := &yaml.Node{
		Kind: yaml.MappingNode,
	}
	add(ret, "kind", str(kind))
	if pos.IsValid() {
		add(ret, "pos", str(pos.String()))
	}
	return ret
}

func add(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, str(key), value)
}

func sequence() *yaml.Node {
	return &yaml.Node{
		Kind: yaml.SequenceNode,
	}
}

func scalar(tag string, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

func str(value string) *yaml.Node {
	return scalar("!!str", value)
}

func null() *yaml.Node {
	return scalar("!!null", "null")
}
