package enums

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypePhoto, MediaTypeVideo:
		return true
	default:
		return false
	}
}
