package jsonschema

// Draft identifies a released revision of the JSON Schema specification
// this package can compile against. Later drafts compare greater, so
// feature gates can be written as simple inequalities (draftHasContains).
type Draft int

const (
	Draft4 Draft = iota
	Draft6
	Draft7
	Draft2019_09
)

func (d Draft) String() string {
	switch d {
	case Draft4:
		return "draft4"
	case Draft6:
		return "draft6"
	case Draft7:
		return "draft7"
	case Draft2019_09:
		return "draft2019-09"
	default:
		return "unknown"
	}
}
