package defs

import "github.com/adammathes/webattr/pkg/schema"

// HTML5Tags lists the HTML5 elements. Void elements take no end tag.
var HTML5Tags = []schema.TagRecord{
	{LocalName: "a", Void: false},
	{LocalName: "abbr", Void: false},
	{LocalName: "address", Void: false},
	{LocalName: "area", Void: true},
	{LocalName: "article", Void: false},
	{LocalName: "aside", Void: false},
	{LocalName: "audio", Void: false},
	{LocalName: "b", Void: false},
	{LocalName: "base", Void: true},
	{LocalName: "bdi", Void: false},
	{LocalName: "bdo", Void: false},
	{LocalName: "blockquote", Void: false},
	{LocalName: "body", Void: false},
	{LocalName: "br", Void: true},
	{LocalName: "button", Void: false},
	{LocalName: "canvas", Void: false},
	{LocalName: "caption", Void: false},
	{LocalName: "cite", Void: false},
	{LocalName: "code", Void: false},
	{LocalName: "col", Void: true},
	{LocalName: "colgroup", Void: false},
	{LocalName: "data", Void: false},
	{LocalName: "datalist", Void: false},
	{LocalName: "dd", Void: false},
	{LocalName: "del", Void: false},
	{LocalName: "details", Void: false},
	{LocalName: "dfn", Void: false},
	{LocalName: "dialog", Void: false},
	{LocalName: "div", Void: false},
	{LocalName: "dl", Void: false},
	{LocalName: "dt", Void: false},
	{LocalName: "em", Void: false},
	{LocalName: "embed", Void: true},
	{LocalName: "fieldset", Void: false},
	{LocalName: "figcaption", Void: false},
	{LocalName: "figure", Void: false},
	{LocalName: "footer", Void: false},
	{LocalName: "form", Void: false},
	{LocalName: "h1", Void: false},
	{LocalName: "h2", Void: false},
	{LocalName: "h3", Void: false},
	{LocalName: "h4", Void: false},
	{LocalName: "h5", Void: false},
	{LocalName: "h6", Void: false},
	{LocalName: "head", Void: false},
	{LocalName: "header", Void: false},
	{LocalName: "hgroup", Void: false},
	{LocalName: "hr", Void: true},
	{LocalName: "html", Void: false},
	{LocalName: "i", Void: false},
	{LocalName: "iframe", Void: false},
	{LocalName: "img", Void: true},
	{LocalName: "input", Void: true},
	{LocalName: "ins", Void: false},
	{LocalName: "kbd", Void: false},
	{LocalName: "label", Void: false},
	{LocalName: "legend", Void: false},
	{LocalName: "li", Void: false},
	{LocalName: "link", Void: true},
	{LocalName: "main", Void: false},
	{LocalName: "map", Void: false},
	{LocalName: "mark", Void: false},
	{LocalName: "menu", Void: false},
	{LocalName: "meta", Void: true},
	{LocalName: "meter", Void: false},
	{LocalName: "nav", Void: false},
	{LocalName: "noscript", Void: false},
	{LocalName: "object", Void: false},
	{LocalName: "ol", Void: false},
	{LocalName: "optgroup", Void: false},
	{LocalName: "option", Void: false},
	{LocalName: "output", Void: false},
	{LocalName: "p", Void: false},
	{LocalName: "param", Void: true},
	{LocalName: "picture", Void: false},
	{LocalName: "pre", Void: false},
	{LocalName: "progress", Void: false},
	{LocalName: "q", Void: false},
	{LocalName: "rp", Void: false},
	{LocalName: "rt", Void: false},
	{LocalName: "ruby", Void: false},
	{LocalName: "s", Void: false},
	{LocalName: "samp", Void: false},
	{LocalName: "script", Void: false},
	{LocalName: "search", Void: false},
	{LocalName: "section", Void: false},
	{LocalName: "select", Void: false},
	{LocalName: "slot", Void: false},
	{LocalName: "small", Void: false},
	{LocalName: "source", Void: true},
	{LocalName: "span", Void: false},
	{LocalName: "strong", Void: false},
	{LocalName: "style", Void: false},
	{LocalName: "sub", Void: false},
	{LocalName: "summary", Void: false},
	{LocalName: "sup", Void: false},
	{LocalName: "table", Void: false},
	{LocalName: "tbody", Void: false},
	{LocalName: "td", Void: false},
	{LocalName: "template", Void: false},
	{LocalName: "textarea", Void: false},
	{LocalName: "tfoot", Void: false},
	{LocalName: "th", Void: false},
	{LocalName: "thead", Void: false},
	{LocalName: "time", Void: false},
	{LocalName: "title", Void: false},
	{LocalName: "tr", Void: false},
	{LocalName: "track", Void: true},
	{LocalName: "u", Void: false},
	{LocalName: "ul", Void: false},
	{LocalName: "var", Void: false},
	{LocalName: "video", Void: false},
	{LocalName: "wbr", Void: true},

	// Obsolete and non-conforming elements still seen in the wild.
	{LocalName: "acronym", Void: false},
	{LocalName: "applet", Void: false},
	{LocalName: "basefont", Void: true},
	{LocalName: "bgsound", Void: true},
	{LocalName: "big", Void: false},
	{LocalName: "blink", Void: false},
	{LocalName: "center", Void: false},
	{LocalName: "dir", Void: false},
	{LocalName: "font", Void: false},
	{LocalName: "frame", Void: true},
	{LocalName: "frameset", Void: false},
	{LocalName: "image", Void: true},
	{LocalName: "isindex", Void: true},
	{LocalName: "keygen", Void: true},
	{LocalName: "listing", Void: false},
	{LocalName: "marquee", Void: false},
	{LocalName: "menuitem", Void: false},
	{LocalName: "multicol", Void: false},
	{LocalName: "nextid", Void: false},
	{LocalName: "nobr", Void: false},
	{LocalName: "noembed", Void: false},
	{LocalName: "noframes", Void: false},
	{LocalName: "plaintext", Void: false},
	{LocalName: "rb", Void: false},
	{LocalName: "rtc", Void: false},
	{LocalName: "spacer", Void: false},
	{LocalName: "strike", Void: false},
	{LocalName: "tt", Void: false},
	{LocalName: "xmp", Void: false},
}

// SVGTags lists the SVG elements. No SVG element is void; an empty SVG
// element is written self-closing instead.
var SVGTags = []schema.TagRecord{
	{LocalName: "a", Void: false},
	{LocalName: "animate", Void: false},
	{LocalName: "animateMotion", Void: false},
	{LocalName: "animateTransform", Void: false},
	{LocalName: "circle", Void: false},
	{LocalName: "clipPath", Void: false},
	{LocalName: "defs", Void: false},
	{LocalName: "desc", Void: false},
	{LocalName: "discard", Void: false},
	{LocalName: "ellipse", Void: false},
	{LocalName: "feBlend", Void: false},
	{LocalName: "feColorMatrix", Void: false},
	{LocalName: "feComponentTransfer", Void: false},
	{LocalName: "feComposite", Void: false},
	{LocalName: "feConvolveMatrix", Void: false},
	{LocalName: "feDiffuseLighting", Void: false},
	{LocalName: "feDisplacementMap", Void: false},
	{LocalName: "feDistantLight", Void: false},
	{LocalName: "feDropShadow", Void: false},
	{LocalName: "feFlood", Void: false},
	{LocalName: "feFuncA", Void: false},
	{LocalName: "feFuncB", Void: false},
	{LocalName: "feFuncG", Void: false},
	{LocalName: "feFuncR", Void: false},
	{LocalName: "feGaussianBlur", Void: false},
	{LocalName: "feImage", Void: false},
	{LocalName: "feMerge", Void: false},
	{LocalName: "feMergeNode", Void: false},
	{LocalName: "feMorphology", Void: false},
	{LocalName: "feOffset", Void: false},
	{LocalName: "fePointLight", Void: false},
	{LocalName: "feSpecularLighting", Void: false},
	{LocalName: "feSpotLight", Void: false},
	{LocalName: "feTile", Void: false},
	{LocalName: "feTurbulence", Void: false},
	{LocalName: "filter", Void: false},
	{LocalName: "foreignObject", Void: false},
	{LocalName: "g", Void: false},
	{LocalName: "image", Void: false},
	{LocalName: "line", Void: false},
	{LocalName: "linearGradient", Void: false},
	{LocalName: "marker", Void: false},
	{LocalName: "mask", Void: false},
	{LocalName: "metadata", Void: false},
	{LocalName: "mpath", Void: false},
	{LocalName: "path", Void: false},
	{LocalName: "pattern", Void: false},
	{LocalName: "polygon", Void: false},
	{LocalName: "polyline", Void: false},
	{LocalName: "radialGradient", Void: false},
	{LocalName: "rect", Void: false},
	{LocalName: "script", Void: false},
	{LocalName: "set", Void: false},
	{LocalName: "stop", Void: false},
	{LocalName: "style", Void: false},
	{LocalName: "svg", Void: false},
	{LocalName: "switch", Void: false},
	{LocalName: "symbol", Void: false},
	{LocalName: "text", Void: false},
	{LocalName: "textPath", Void: false},
	{LocalName: "title", Void: false},
	{LocalName: "tspan", Void: false},
	{LocalName: "use", Void: false},
	{LocalName: "view", Void: false},
}
