package preset

import "github.com/npillmayer/taos/dom/style"

// Fade is the name of the default animation for elements which do not
// name one.
const Fade = "fade"

// builtins is the table of predefined animations. Every preset pairs
// its transformation with a fade-in.
var builtins = []Preset{
	{Fade,
		style.Decl("opacity", "0"),
		style.Decl("opacity", "1")},
	{"slide-up",
		style.Decl("opacity", "0", "transform", "translateY(20px)"),
		style.Decl("opacity", "1", "transform", "translateY(0)")},
	{"slide-down",
		style.Decl("opacity", "0", "transform", "translateY(-20px)"),
		style.Decl("opacity", "1", "transform", "translateY(0)")},
	{"slide-left",
		style.Decl("opacity", "0", "transform", "translateX(20px)"),
		style.Decl("opacity", "1", "transform", "translateX(0)")},
	{"slide-right",
		style.Decl("opacity", "0", "transform", "translateX(-20px)"),
		style.Decl("opacity", "1", "transform", "translateX(0)")},
	{"zoom-in",
		style.Decl("opacity", "0", "transform", "scale(0.95)"),
		style.Decl("opacity", "1", "transform", "scale(1)")},
	{"zoom-out",
		style.Decl("opacity", "0", "transform", "scale(1.05)"),
		style.Decl("opacity", "1", "transform", "scale(1)")},
	{"flip-up",
		style.Decl("opacity", "0", "transform", "perspective(500px) rotateX(10deg)"),
		style.Decl("opacity", "1", "transform", "perspective(500px) rotateX(0)")},
	{"flip-down",
		style.Decl("opacity", "0", "transform", "perspective(500px) rotateX(-10deg)"),
		style.Decl("opacity", "1", "transform", "perspective(500px) rotateX(0)")},
}

// Builtin returns the names of the predefined presets, in table order.
func Builtin() []string {
	names := make([]string, len(builtins))
	for i, p := range builtins {
		names[i] = p.Name
	}
	return names
}
