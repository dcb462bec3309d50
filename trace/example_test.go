package trace_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/puzzletrace/trace"
)

type moved struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (moved) Kind() string { return "move" }

// ExampleRecorder records two steps and prints the frozen trace as JSON lines.
func ExampleRecorder() {
	r := trace.NewRecorder[moved](2)
	r.Emit(moved{From: 9, To: 2})
	r.Emit(moved{From: 8, To: 3})

	tr := r.Trace()
	fmt.Println(tr.Len(), tr.Kinds())
	_ = trace.Encode(os.Stdout, tr)
	// Output:
	// 2 [move move]
	// {"seq":0,"kind":"move","data":{"from":9,"to":2}}
	// {"seq":1,"kind":"move","data":{"from":8,"to":3}}
}
