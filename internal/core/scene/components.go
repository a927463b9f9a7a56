package scene

// ConstantID tags an object with the identifier that survives scene reloads
// and save/load cycles. The save core reads it and never assigns or mutates
// it. Zero means "unset" and is never a valid identity.
//
// Uniqueness across a scene is the author's responsibility; nothing here
// verifies it, and lookups settle for the first match.
type ConstantID struct {
	ID int
}

// Transform is the positional state of an object, in world units.
type Transform struct {
	X, Y, Z          float32
	RotX, RotY, RotZ float32
	ScaleX           float32
	ScaleY           float32
	ScaleZ           float32
}

// Renderer carries the visibility flag of a drawable object.
type Renderer struct {
	Visible bool
}
