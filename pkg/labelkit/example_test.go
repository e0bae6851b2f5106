package labelkit_test

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit"
	"github.com/BrandonKowalski/labelkit/pkg/labelkit/colornode"
)

const exampleTable = `# index name r g b a
0 Red 255 0 0 255
1 Green 0 255 0 255
2 Blue 0 0 255 255
`

// Example shows a combo box mirroring a color table and reporting a
// selection.
func Example() {
	table, err := colornode.ParseCtbl(strings.NewReader(exampleTable), "primaries")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	box := labelkit.NewLabelComboBox(nil)
	box.OnColorChanged(func(c labelkit.Color) { fmt.Println("color:", c.Hex()) })
	box.OnColorNameChanged(func(name string) { fmt.Println("name:", name) })
	box.OnIndexChanged(func(index int) { fmt.Println("index:", index) })

	box.SetColorSource(table)
	box.SetCurrentColor(1)

	// Output:
	// color: #00ff00ff
	// name: Green
	// index: 1
}

// Example_noneRow shows the "None" row shifting display rows by one.
func Example_noneRow() {
	table, _ := colornode.ParseCtbl(strings.NewReader(exampleTable), "primaries")

	box := labelkit.NewLabelComboBox(nil)
	box.SetNoneEnabled(true)
	box.SetColorSource(table)

	list := box.List()
	for i := 0; i < list.Count(); i++ {
		fmt.Printf("%d %s\n", i, list.ItemText(i))
	}

	box.SetCurrentColor(2)
	fmt.Println("logical", box.CurrentColor(), "display", list.CurrentIndex())

	// Output:
	// 0 None
	// 1 Red
	// 2 Green
	// 3 Blue
	// logical 2 display 3
}
