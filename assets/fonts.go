package assets

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/font/opentype"
)

// ErrUnknownFont is returned for font names or styles that are not bundled.
var ErrUnknownFont = errors.New("unknown font")

// Font styles accepted by Font, for kong enums.
const FontStyles = "plain,bold,italic,bold+italic"

type family struct {
	plain, bold, italic, boldItalic []byte
}

var families = map[string]family{
	"go":           {plain: goregular.TTF, bold: gobold.TTF, italic: goitalic.TTF, boldItalic: gobolditalic.TTF},
	"go-mono":      {plain: gomono.TTF, bold: gomonobold.TTF, italic: gomonoitalic.TTF, boldItalic: gomonobolditalic.TTF},
	"go-medium":    {plain: gomedium.TTF, bold: gomedium.TTF, italic: gomediumitalic.TTF, boldItalic: gomediumitalic.TTF},
	"go-smallcaps": {plain: gosmallcaps.TTF, bold: gosmallcaps.TTF, italic: gosmallcapsitalic.TTF, boldItalic: gosmallcapsitalic.TTF},
}

// FontNames lists the bundled font families.
func FontNames() []string {
	names := make([]string, 0, len(families))
	for n := range families {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Font returns the TTF data of a bundled family in the given style.
func Font(name, style string) ([]byte, error) {
	fam, ok := families[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (bundled: %s)", ErrUnknownFont, name, strings.Join(FontNames(), ", "))
	}
	switch strings.ToLower(style) {
	case "plain", "":
		return fam.plain, nil
	case "bold":
		return fam.bold, nil
	case "italic":
		return fam.italic, nil
	case "bold+italic":
		return fam.boldItalic, nil
	default:
		return nil, fmt.Errorf("%w style %q", ErrUnknownFont, style)
	}
}

// LoadFontFile reads a TTF or OTF file and checks that it parses.
func LoadFontFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := opentype.Parse(data); err != nil {
		return nil, fmt.Errorf("%s is not a usable font: %w", path, err)
	}
	return data, nil
}
