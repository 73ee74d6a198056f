package motion

import (
	"math"
	"strconv"
	"strings"
)

// Style renders property values as an inline CSS declaration list. Missing
// properties are left to the stylesheet.
func Style(values map[Property]float64) string {
	var decls []string

	if v, ok := values[PropOpacity]; ok {
		decls = append(decls, "opacity:"+num(v))
	}

	var transforms []string
	if v, ok := values[PropY]; ok {
		transforms = append(transforms, "translateY("+num(v)+"px)")
	}
	if v, ok := values[PropScale]; ok {
		transforms = append(transforms, "scale("+num(v)+")")
	}
	if v, ok := values[PropRotate]; ok {
		transforms = append(transforms, "rotate("+num(v)+"deg)")
	}
	if len(transforms) > 0 {
		decls = append(decls, "transform:"+strings.Join(transforms, " "))
	}

	if v, ok := values[PropHeight]; ok {
		decls = append(decls, "height:"+num(v)+"%")
	}

	return strings.Join(decls, ";")
}

func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // normalise -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
