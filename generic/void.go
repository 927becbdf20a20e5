package generic

// Void is the zero-size value type, used as the value of set-like maps.
type Void struct{}

func NewVoid() Void {
	return Void{}
}
