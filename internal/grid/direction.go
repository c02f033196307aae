package grid

// Direction is the last movement applied to an entity. The zero value is Right.
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

// Delta converts a direction to a unit (dx, dy). Y grows downwards.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
