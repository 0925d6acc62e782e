package main

import (
	"log"

	"github.com/xiam/lscript/ast"
	"github.com/xiam/lscript/intern"
	"github.com/xiam/lscript/parser"
)

func main() {
	input := `(fn_a (fn_b (89 \A 'b (67 3.27))) (fn_c 66 3 53 "Hello world!" "😊"))`

	table := intern.New()
	values, err := parser.Parse([]byte(input), table)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, v := range values {
		ast.Print(v, table)
		ast.Release(v, table)
	}
}
