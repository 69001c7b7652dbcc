package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Cube returns the twelve edges of an axis-aligned cube of the given size centred on center.
func Cube(center mgl32.Vec3, size float32, c color.RGBA) Wireframe {
	h := size / 2
	var corners [8]mgl32.Vec3
	for i := range corners {
		corners[i] = center.Add(mgl32.Vec3{
			sign(i&1 != 0) * h,
			sign(i&2 != 0) * h,
			sign(i&4 != 0) * h,
		})
	}

	w := Wireframe{Color: c}
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				w.Segments = append(w.Segments, Segment{corners[i], corners[i|bit]})
			}
		}
	}
	return w
}

// Grid returns a square grid on the y=0 plane spanning [-extent, extent] with lines every step.
func Grid(extent, step float32, c color.RGBA) Wireframe {
	w := Wireframe{Color: c}
	if step <= 0 {
		return w
	}
	n := int(extent / step)
	for i := -n; i <= n; i++ {
		p := float32(i) * step
		w.Segments = append(w.Segments,
			Segment{{p, 0, -extent}, {p, 0, extent}},
			Segment{{-extent, 0, p}, {extent, 0, p}},
		)
	}
	return w
}

func sign(positive bool) float32 {
	if positive {
		return 1
	}
	return -1
}
