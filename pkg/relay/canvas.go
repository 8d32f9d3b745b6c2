package relay

//go:generate mockgen -source=canvas.go -destination=mock/canvas.go -package=mock

// Canvas is the drawing surface the consumer renders remote strokes onto.
// Implementations track the current pen position; LineTo draws from the
// last anchored point.
type Canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64, color string, lineWidth float64)
	Clear()
}
