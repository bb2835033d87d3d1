package typeid

import (
	"go.jetify.com/typeid/v2"
)

const (
	PrefixShape    = "shape"
	PrefixDocument = "doc"
	PrefixHistory  = "hist"
	PrefixSession  = "sess"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewShapeID() string    { return New(PrefixShape) }
func NewDocumentID() string { return New(PrefixDocument) }
func NewHistoryID() string  { return New(PrefixHistory) }
func NewSessionID() string  { return New(PrefixSession) }
