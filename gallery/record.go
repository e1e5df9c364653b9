package gallery

import "strings"

// MediaRecord is one entry of the backend metadata collection.
type MediaRecord struct {
	Name         string   `json:"Name"`
	SHA256       string   `json:"SHA256"`
	Tags         []string `json:"Tags"`
	ThumbnailURL string   `json:"ThumbnailURL"`
}

type MediaKind int

const (
	KindImage MediaKind = iota
	KindVideo
)

func (k MediaKind) String() string {
	if k == KindVideo {
		return "webm"
	}
	return "image"
}

// KindOf classifies a file name. Only the .webm suffix marks a video.
func KindOf(name string) MediaKind {
	if strings.HasSuffix(strings.ToLower(name), ".webm") {
		return KindVideo
	}
	return KindImage
}

func (r MediaRecord) Kind() MediaKind {
	return KindOf(r.Name)
}

func (r MediaRecord) IsVideo() bool {
	return r.Kind() == KindVideo
}

// MediaPath is the server path of the full media bytes.
func (r MediaRecord) MediaPath() string {
	return "/images/" + r.Name
}

// TagList never returns nil.
func (r MediaRecord) TagList() []string {
	if r.Tags == nil {
		return []string{}
	}
	return r.Tags
}

func (r MediaRecord) clone() MediaRecord {
	c := r
	if r.Tags != nil {
		c.Tags = append([]string(nil), r.Tags...)
	}
	return c
}

func cloneRecords(records []MediaRecord) []MediaRecord {
	if records == nil {
		return nil
	}
	out := make([]MediaRecord, len(records))
	for i, r := range records {
		out[i] = r.clone()
	}
	return out
}
