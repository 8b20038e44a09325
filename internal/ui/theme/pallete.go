package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

var theme = catppuccin.Mocha

var gradientFlavour = catppuccin.Latte

var (
	LattePink   string = gradientFlavour.Pink().Hex   // heart gradient start
	LatteMaroon string = gradientFlavour.Maroon().Hex // heart gradient end
)

func Rosewater() lipgloss.Color { return lipgloss.Color(theme.Rosewater().Hex) }
func Flamingo() lipgloss.Color  { return lipgloss.Color(theme.Flamingo().Hex) }
func Pink() lipgloss.Color      { return lipgloss.Color(theme.Pink().Hex) }
func Red() lipgloss.Color       { return lipgloss.Color(theme.Red().Hex) }
func Maroon() lipgloss.Color    { return lipgloss.Color(theme.Maroon().Hex) }
func Green() lipgloss.Color     { return lipgloss.Color(theme.Green().Hex) }
func Blue() lipgloss.Color      { return lipgloss.Color(theme.Blue().Hex) }
func Text() lipgloss.Color      { return lipgloss.Color(theme.Text().Hex) }
func Subtext0() lipgloss.Color  { return lipgloss.Color(theme.Subtext0().Hex) }
func Subtext1() lipgloss.Color  { return lipgloss.Color(theme.Subtext1().Hex) }
func Overlay0() lipgloss.Color  { return lipgloss.Color(theme.Overlay0().Hex) }
func Overlay1() lipgloss.Color  { return lipgloss.Color(theme.Overlay1().Hex) }
func Surface0() lipgloss.Color  { return lipgloss.Color(theme.Surface0().Hex) }
func Surface1() lipgloss.Color  { return lipgloss.Color(theme.Surface1().Hex) }
func Base() lipgloss.Color      { return lipgloss.Color(theme.Base().Hex) }
func Mantle() lipgloss.Color    { return lipgloss.Color(theme.Mantle().Hex) }
