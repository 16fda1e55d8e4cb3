package domain

// GridPoint — одна клетка сетки. Равенство — покомпонентное.
type GridPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Ground — тип поверхности клетки.
type Ground uint8

const (
	GroundWater Ground = iota
	GroundSand
	GroundSoil
	GroundRock
)

func (g Ground) String() string {
	switch g {
	case GroundWater:
		return "water"
	case GroundSand:
		return "sand"
	case GroundSoil:
		return "soil"
	case GroundRock:
		return "rock"
	}
	return "unknown"
}

// ObjectKind — вид размещенного на клетке объекта.
type ObjectKind uint8

const (
	ObjectTree ObjectKind = iota
	ObjectRock
)

func (k ObjectKind) String() string {
	if k == ObjectTree {
		return "tree"
	}
	return "rock"
}

// Object — объект, размещенный генератором. После генерации не двигается.
type Object struct {
	X    int        `json:"x"`
	Y    int        `json:"y"`
	Kind ObjectKind `json:"kind"`
}

// Path — маршрут от старта до цели включительно.
// Пустой/nil маршрут означает "путь не найден".
type Path []GridPoint
