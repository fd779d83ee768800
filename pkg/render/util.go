package render

import "image"

func imageRect(w, h int) image.Rectangle {
	return image.Rect(0, 0, w, h)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
