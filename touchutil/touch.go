package touchutil

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

var (
	justScreenTouchedIDs = make([]ebiten.TouchID, 0)
)

// AppendNewTouches starts tracking every left click and screen touch that
// began this tick.
func AppendNewTouches(touches []Touch) []Touch {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		touches = append(touches, &mouseButtonPress{
			id:          ebiten.MouseButtonLeft,
			justTouched: true,
		})
	}

	justScreenTouchedIDs = inpututil.AppendJustPressedTouchIDs(justScreenTouchedIDs[:0])
	for _, id := range justScreenTouchedIDs {
		touches = append(touches, &screenTouch{
			id:          id,
			justTouched: true,
		})
	}

	return touches
}

// Update refreshes positions, returns the positions of touches appended
// this tick, and drops the touches that were released. A touch reports
// IsJustTouched only on the tick it was appended, so a touch whose release
// was missed never repeats a press.
func Update(touches []Touch) ([]Touch, []*mathutil.Vector2D) {
	for _, t := range touches {
		t.Update()
	}

	started := lo.FilterMap(touches, func(t Touch, _ int) (*mathutil.Vector2D, bool) {
		return t.Position(), t.IsJustTouched()
	})
	for _, t := range touches {
		t.settle()
	}

	touches = lo.Filter(touches, func(t Touch, _ int) bool {
		return !t.IsJustReleased()
	})

	return touches, started
}

type Touch interface {
	Update()
	IsJustTouched() bool
	IsJustReleased() bool
	Position() *mathutil.Vector2D
	settle()
}

type mouseButtonPress struct {
	id          ebiten.MouseButton
	pos         *mathutil.Vector2D
	justTouched bool
}

func (m *mouseButtonPress) Update() {
	x, y := ebiten.CursorPosition()
	m.pos = mathutil.NewVector2D(float64(x), float64(y))
}

func (m *mouseButtonPress) IsJustTouched() bool {
	return m.justTouched
}

func (m *mouseButtonPress) settle() {
	m.justTouched = false
}

func (m *mouseButtonPress) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(m.id)
}

func (m *mouseButtonPress) Position() *mathutil.Vector2D {
	return m.pos
}

type screenTouch struct {
	id          ebiten.TouchID
	pos         *mathutil.Vector2D
	justTouched bool
}

func (s *screenTouch) Update() {
	var x, y int
	if s.IsJustReleased() {
		x, y = inpututil.TouchPositionInPreviousTick(s.id)
	} else {
		x, y = ebiten.TouchPosition(s.id)
	}
	s.pos = mathutil.NewVector2D(float64(x), float64(y))
}

func (s *screenTouch) IsJustTouched() bool {
	return s.justTouched
}

func (s *screenTouch) settle() {
	s.justTouched = false
}

func (s *screenTouch) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(s.id)
}

func (s *screenTouch) Position() *mathutil.Vector2D {
	return s.pos
}
