package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

var (
	fonts    = map[FontName]font.Face{}
	loadOnce sync.Once
)

func (f FontName) Get() font.Face {
	loadOnce.Do(loadDefaults)
	face, ok := fonts[f]
	if !ok {
		panic(fmt.Sprintf("font %s not found", f))
	}
	return face
}

// The game ships no font assets; the Go font covers every face.
func loadDefaults() {
	LoadFontWithSize(Regular, goregular.TTF, 14)
	LoadFontWithSize(Bold, gobold.TTF, 14)
	LoadFontWithSize(Title, gobold.TTF, 32)
	LoadFontWithSize(Small, goregular.TTF, 11)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("parse font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}
