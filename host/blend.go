package host

// BlendMode selects how a fill combines with the pixels already on the
// surface.
type BlendMode uint8

const (
	// BlendNormal paints the source over the destination.
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies source and destination, which can only darken.
	BlendMultiply
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	default:
		return "Unknown"
	}
}
