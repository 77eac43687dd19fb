package boxlayout_test

import (
	"fmt"

	"github.com/grindlemire/boxlayout"
)

func Example() {
	root := boxlayout.NewNode(boxlayout.Row(boxlayout.DefaultFlexStyle()))
	label := boxlayout.NewNode(boxlayout.Leaf(boxlayout.Dp(40), boxlayout.Dp(20), nil))
	fill := boxlayout.NewNode(boxlayout.Leaf(boxlayout.Dp(0), boxlayout.Dp(10), nil))
	fill.SetModifiers(boxlayout.Expanded(1))
	if err := root.AddChild(label, fill); err != nil {
		panic(err)
	}

	owner, err := boxlayout.NewOwner(root)
	if err != nil {
		panic(err)
	}
	if err := owner.Layout(boxlayout.Loose(100, 50)); err != nil {
		panic(err)
	}

	fmt.Println(root.Size())
	fmt.Println(fill.Position(), fill.Size())
	// Output:
	// 100px x 20px
	// (40, 0) 60px x 10px
}
