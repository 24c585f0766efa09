package color_test

import (
	"fmt"

	"github.com/matzehuels/huegrid/pkg/color"
)

func ExampleEncode() {
	c := color.NewHSL(360, 99, 99)
	for _, f := range color.Formats {
		fmt.Printf("%-4s %s\n", f, color.Encode(c, f))
	}
	// Output:
	// HSLA hsl(0, 99%, 99%)
	// RGBA rgb(254.9745, 249.9255, 249.9255)
	// HEX  #fffafa
}

func ExampleTextColor() {
	fmt.Println(color.TextColor(color.NewHSL(240, 100, 50)))
	fmt.Println(color.TextColor(color.NewHSL(60, 100, 50)))
	// Output:
	// #fff
	// #000
}
