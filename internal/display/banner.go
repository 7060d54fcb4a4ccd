package display

import (
	"fmt"
	"io"

	"github.com/backmassage/namewright/internal/term"
)

// PrintBanner writes the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `                                         _       _     _
 _ __   __ _ _ __ ___   _____      ___ __(_) __ _| |__ | |_
| '_ \ / _`+"`"+` | '_ `+"`"+` _ \ / _ \ \ /\ / / '__| |/ _`+"`"+` | '_ \| __|
| | | | (_| | | | | | |  __/\ V  V /| |  | | (_| | | | | |_
|_| |_|\__,_|_| |_| |_|\___| \_/\_/ |_|  |_|\__, |_| |_|\__|
                                            |___/
`)
	fmt.Fprint(w, term.NC)
}
