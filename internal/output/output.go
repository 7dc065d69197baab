package output

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// Kind identifies the platform a thumbnail is sized for.
type Kind string

const (
	// KindYouTube is a video-platform cover.
	KindYouTube Kind = "youtube"
	// KindNote is an article-platform cover.
	KindNote Kind = "note"
)

// Default is used when no kind is requested.
const Default = KindYouTube

// ErrUnknownKind is returned by Parse for unrecognised names.
var ErrUnknownKind = errors.New("unknown output kind")

var kinds = []Kind{KindYouTube, KindNote}

// Kinds returns every supported kind in display order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Parse resolves a kind name. The empty string yields Default.
func Parse(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Default, nil
	}
	for _, k := range kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// Size returns the fixed pixel size of the kind.
func (k Kind) Size() image.Point {
	switch k {
	case KindNote:
		return image.Pt(1280, 670)
	default:
		return image.Pt(1280, 720)
	}
}

// Label returns the display name.
func (k Kind) Label() string {
	switch k {
	case KindNote:
		return "note"
	default:
		return "YouTube"
	}
}

func (k Kind) String() string { return string(k) }
