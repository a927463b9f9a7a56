package encoding

// Serializable provides a clean, simple interface for records that own their
// wire form, such as the save-slot manifest.
type Serializable interface {
	Serialize() ([]byte, error)
	Deserialize([]byte) error
}
