package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/leafiz/internal/ui/theme"
)

// Block-letter title.
const titleFull = ` ██╗     ███████╗ █████╗ ███████╗██╗███████╗
 ██║     ██╔════╝██╔══██╗██╔════╝██║╚══███╔╝
 ██║     █████╗  ███████║█████╗  ██║  ███╔╝
 ██║     ██╔══╝  ██╔══██║██╔══╝  ██║ ███╔╝
 ███████╗███████╗██║  ██║██║     ██║███████╗
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝`

const titleCompact = "L · E · A · F · I · Z"

// PlantVariant selects which plant art to display.
type PlantVariant int

const (
	PlantSprout   PlantVariant = iota // nothing mastered yet
	PlantGrowing                      // some plants mastered
	PlantBlooming                     // whole collection mastered
)

const plantSprout = `  ▁
 (│)
┌─┴─┐
│▒▒▒│
└───┘`

const plantGrowing = ` \│/
─(│)─
┌─┴─┐
│▒▒▒│
└───┘`

const plantBlooming = ` ❀ ❀
\ │ /
─(│)─
┌─┴─┐
│▒▒▒│
└───┘`

// RenderPlant returns the plant ASCII art for the given variant.
func RenderPlant(variant PlantVariant) string {
	var art string
	fg := theme.Primary

	switch variant {
	case PlantGrowing:
		art = plantGrowing
		fg = theme.Secondary
	case PlantBlooming:
		art = plantBlooming
		fg = theme.Accent
	default:
		art = plantSprout
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
