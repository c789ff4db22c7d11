package entity

type Player struct {
	Name  string `json:"name"`
	Piece Piece  `json:"piece"`
}

func NewPlayer(name string, piece Piece) *Player {
	return &Player{
		Name:  name,
		Piece: piece,
	}
}

func (that *Player) String() string {
	return that.Name + " (" + that.Piece.Symbol() + ")"
}
