package host

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggfu"
)

// mockBackend records every call it receives as a short string.
type mockBackend struct {
	name       string
	calls      []string
	canvasErr  error
	presentErr error
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) CreateCanvas(w, h float64) (Surface, error) {
	if b.canvasErr != nil {
		return nil, b.canvasErr
	}
	b.calls = append(b.calls, fmt.Sprintf("canvas %gx%g", w, h))
	return b, nil
}

func (b *mockBackend) FillRegion(c ggfu.RGB, mode BlendMode) {
	b.calls = append(b.calls, fmt.Sprintf("fill %s %s", c, mode))
}

func (b *mockBackend) SelectEllipse(x, y, w, h float64, _ SelectOptions) {
	b.calls = append(b.calls, fmt.Sprintf("ellipse %g %g %g %g", x, y, w, h))
}

func (b *mockBackend) SelectCircle(x, y, d float64, _ SelectOptions) {
	b.calls = append(b.calls, fmt.Sprintf("circle %g %g %g", x, y, d))
}

func (b *mockBackend) RadialGradient(g Gradient) {
	b.calls = append(b.calls, fmt.Sprintf("gradient %g", g.Offset))
}

func (b *mockBackend) ClearSelection() {
	b.calls = append(b.calls, "clear")
}

func (b *mockBackend) Present() error {
	b.calls = append(b.calls, "present")
	return b.presentErr
}

var errMock = errors.New("mock failure")
