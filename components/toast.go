package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ToastData is a short on-screen notice that fades in, holds and fades out.
type ToastData struct {
	Message string
	Fade    *gween.Sequence
	Alpha   float32
	Done    bool
}

var Toast = donburi.NewComponentType[ToastData]()
