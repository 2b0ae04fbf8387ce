package screen

import "image/color"

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
