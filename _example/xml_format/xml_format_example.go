package main

import (
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/xiam/lscript/ast"
	"github.com/xiam/lscript/intern"
	"github.com/xiam/lscript/parser"
)

func printTree(v ast.Value, table *intern.Table) {
	printIndentedTree(v, table, 0)
}

func printIndentedTree(v ast.Value, table *intern.Table, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if list, ok := v.(*ast.List); ok {
		fmt.Printf("%s<%s>\n", indent, list.Type())
		for i := range list.Elems {
			printIndentedTree(list.Elems[i], table, indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, list.Type())
		return
	}
	text := html.EscapeString(string(ast.Encode(v, table)))
	fmt.Printf("%s<%s>%s</%s>\n", indent, v.Type(), text, v.Type())
}

func main() {
	input := `(fn_a (fn_b (89 #f 'b (67 3.27))) (fn_c 66 3 53 "Hello world!" "😊"))`

	table := intern.New()
	values, err := parser.Parse([]byte(input), table)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, v := range values {
		printTree(v, table)
	}
}
