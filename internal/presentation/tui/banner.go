package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Tendril.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Using a subtle gradient-like color scheme (green shoots)
	s1 := termenv.String("  _                 _      _ _ ").Foreground(p.Color("#bef264"))
	s2 := termenv.String(" | |_ ___ _ __   __| |_ __(_) |").Foreground(p.Color("#a3e635"))
	s3 := termenv.String(" | __/ _ \\ '_ \\ / _` | '__| | |").Foreground(p.Color("#84cc16"))
	s4 := termenv.String(" | ||  __/ | | | (_| | |  | | |").Foreground(p.Color("#65a30d"))
	s5 := termenv.String("  \\__\\___|_| |_|\\__,_|_|  |_|_|").Foreground(p.Color("#4d7c0f"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
