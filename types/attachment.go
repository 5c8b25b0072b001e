package types

import "io"

// Attachment is a processed upload ready to be put into object storage.
type Attachment struct {
	reader      io.ReadSeeker
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`
	Width       uint32 `json:"width"`
	Height      uint32 `json:"height"`
}

func (a *Attachment) SetReader(reader io.ReadSeeker) {
	a.reader = reader
}

func (a *Attachment) Reader() io.ReadSeeker {
	return a.reader
}
