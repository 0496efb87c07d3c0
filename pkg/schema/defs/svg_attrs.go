package defs

import (
	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/schema"
)

// SVGAttributes lists the attributes of the SVG namespace. Local names keep
// their SVG spelling (viewBox, xlink:href); lookups still fold ASCII case.
var SVGAttributes = []schema.Record{
	{LocalName: "about", Property: "about", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "accent-height", Property: "accentHeight", Type: attr.Number},
	{LocalName: "accumulate", Property: "accumulate", Type: attr.String},
	{LocalName: "additive", Property: "additive", Type: attr.String},
	{LocalName: "alignment-baseline", Property: "alignmentBaseline", Type: attr.String},
	{LocalName: "alphabetic", Property: "alphabetic", Type: attr.Number},
	{LocalName: "amplitude", Property: "amplitude", Type: attr.Number},
	{LocalName: "arabic-form", Property: "arabicForm", Type: attr.String},
	{LocalName: "ascent", Property: "ascent", Type: attr.Number},
	{LocalName: "attributeName", Property: "attributeName", Type: attr.String},
	{LocalName: "attributeType", Property: "attributeType", Type: attr.String},
	{LocalName: "azimuth", Property: "azimuth", Type: attr.Number},
	{LocalName: "bandwidth", Property: "bandwidth", Type: attr.String},
	{LocalName: "baseFrequency", Property: "baseFrequency", Type: attr.String},
	{LocalName: "baseProfile", Property: "baseProfile", Type: attr.String},
	{LocalName: "baseline-shift", Property: "baselineShift", Type: attr.String},
	{LocalName: "bbox", Property: "bBox", Type: attr.String},
	{LocalName: "begin", Property: "begin", Type: attr.String},
	{LocalName: "bias", Property: "bias", Type: attr.Number},
	{LocalName: "by", Property: "by", Type: attr.String},
	{LocalName: "calcMode", Property: "calcMode", Type: attr.String},
	{LocalName: "cap-height", Property: "capHeight", Type: attr.Number},
	{LocalName: "class", Property: "className", Type: attr.SpaceSep | attr.String},
	{LocalName: "clip", Property: "clip", Type: attr.String},
	{LocalName: "clip-path", Property: "clipPath", Type: attr.String},
	{LocalName: "clip-rule", Property: "clipRule", Type: attr.String},
	{LocalName: "clipPathUnits", Property: "clipPathUnits", Type: attr.String},
	{LocalName: "color", Property: "color", Type: attr.String},
	{LocalName: "color-interpolation", Property: "colorInterpolation", Type: attr.String},
	{LocalName: "color-interpolation-filters", Property: "colorInterpolationFilters", Type: attr.String},
	{LocalName: "color-profile", Property: "colorProfile", Type: attr.String},
	{LocalName: "color-rendering", Property: "colorRendering", Type: attr.String},
	{LocalName: "content", Property: "content", Type: attr.String},
	{LocalName: "contentScriptType", Property: "contentScriptType", Type: attr.String},
	{LocalName: "contentStyleType", Property: "contentStyleType", Type: attr.String},
	{LocalName: "crossorigin", Property: "crossOrigin", Type: attr.String},
	{LocalName: "cursor", Property: "cursor", Type: attr.String},
	{LocalName: "cx", Property: "cx", Type: attr.String},
	{LocalName: "cy", Property: "cy", Type: attr.String},
	{LocalName: "d", Property: "d", Type: attr.String},
	{LocalName: "dataType", Property: "dataType", Type: attr.String},
	{LocalName: "defaultAction", Property: "defaultAction", Type: attr.String},
	{LocalName: "descent", Property: "descent", Type: attr.Number},
	{LocalName: "diffuseConstant", Property: "diffuseConstant", Type: attr.Number},
	{LocalName: "direction", Property: "direction", Type: attr.String},
	{LocalName: "display", Property: "display", Type: attr.String},
	{LocalName: "dur", Property: "dur", Type: attr.String},
	{LocalName: "divisor", Property: "divisor", Type: attr.Number},
	{LocalName: "dominant-baseline", Property: "dominantBaseline", Type: attr.String},
	{LocalName: "download", Property: "download", Type: attr.Bool},
	{LocalName: "dx", Property: "dx", Type: attr.String},
	{LocalName: "dy", Property: "dy", Type: attr.String},
	{LocalName: "edgeMode", Property: "edgeMode", Type: attr.String},
	{LocalName: "editable", Property: "editable", Type: attr.String},
	{LocalName: "elevation", Property: "elevation", Type: attr.Number},
	{LocalName: "enable-background", Property: "enableBackground", Type: attr.String},
	{LocalName: "end", Property: "end", Type: attr.String},
	{LocalName: "event", Property: "event", Type: attr.String},
	{LocalName: "exponent", Property: "exponent", Type: attr.Number},
	{LocalName: "externalResourcesRequired", Property: "externalResourcesRequired", Type: attr.String},
	{LocalName: "fill", Property: "fill", Type: attr.String},
	{LocalName: "fill-opacity", Property: "fillOpacity", Type: attr.Number},
	{LocalName: "fill-rule", Property: "fillRule", Type: attr.String},
	{LocalName: "filter", Property: "filter", Type: attr.String},
	{LocalName: "filterRes", Property: "filterRes", Type: attr.String},
	{LocalName: "filterUnits", Property: "filterUnits", Type: attr.String},
	{LocalName: "flood-color", Property: "floodColor", Type: attr.String},
	{LocalName: "flood-opacity", Property: "floodOpacity", Type: attr.String},
	{LocalName: "focusable", Property: "focusable", Type: attr.String},
	{LocalName: "focusHighlight", Property: "focusHighlight", Type: attr.String},
	{LocalName: "font-family", Property: "fontFamily", Type: attr.String},
	{LocalName: "font-size", Property: "fontSize", Type: attr.String},
	{LocalName: "font-size-adjust", Property: "fontSizeAdjust", Type: attr.String},
	{LocalName: "font-stretch", Property: "fontStretch", Type: attr.String},
	{LocalName: "font-style", Property: "fontStyle", Type: attr.String},
	{LocalName: "font-variant", Property: "fontVariant", Type: attr.String},
	{LocalName: "font-weight", Property: "fontWeight", Type: attr.String},
	{LocalName: "format", Property: "format", Type: attr.String},
	{LocalName: "fr", Property: "fr", Type: attr.String},
	{LocalName: "from", Property: "from", Type: attr.String},
	{LocalName: "fx", Property: "fx", Type: attr.String},
	{LocalName: "fy", Property: "fy", Type: attr.String},
	{LocalName: "g1", Property: "g1", Type: attr.CommaSep | attr.String},
	{LocalName: "g2", Property: "g2", Type: attr.CommaSep | attr.String},
	{LocalName: "glyph-name", Property: "glyphName", Type: attr.CommaSep | attr.String},
	{LocalName: "glyph-orientation-horizontal", Property: "glyphOrientationHorizontal", Type: attr.String},
	{LocalName: "glyph-orientation-vertical", Property: "glyphOrientationVertical", Type: attr.String},
	{LocalName: "glyphRef", Property: "glyphRef", Type: attr.String},
	{LocalName: "gradientTransform", Property: "gradientTransform", Type: attr.String},
	{LocalName: "gradientUnits", Property: "gradientUnits", Type: attr.String},
	{LocalName: "handler", Property: "handler", Type: attr.String},
	{LocalName: "hanging", Property: "hanging", Type: attr.Number},
	{LocalName: "hatchContentUnits", Property: "hatchContentUnits", Type: attr.String},
	{LocalName: "hatchUnits", Property: "hatchUnits", Type: attr.String},
	{LocalName: "height", Property: "height", Type: attr.String},
	{LocalName: "href", Property: "href", Type: attr.String},
	{LocalName: "hreflang", Property: "hrefLang", Type: attr.String},
	{LocalName: "horiz-adv-x", Property: "horizAdvX", Type: attr.Number},
	{LocalName: "horiz-origin-x", Property: "horizOriginX", Type: attr.Number},
	{LocalName: "horiz-origin-y", Property: "horizOriginY", Type: attr.Number},
	{LocalName: "id", Property: "id", Type: attr.String},
	{LocalName: "ideographic", Property: "ideographic", Type: attr.Number},
	{LocalName: "image-rendering", Property: "imageRendering", Type: attr.String},
	{LocalName: "in", Property: "in", Type: attr.String},
	{LocalName: "in2", Property: "in2", Type: attr.String},
	{LocalName: "initialVisibility", Property: "initialVisibility", Type: attr.String},
	{LocalName: "intercept", Property: "intercept", Type: attr.Number},
	{LocalName: "k", Property: "k", Type: attr.Number},
	{LocalName: "k1", Property: "k1", Type: attr.Number},
	{LocalName: "k2", Property: "k2", Type: attr.Number},
	{LocalName: "k3", Property: "k3", Type: attr.Number},
	{LocalName: "k4", Property: "k4", Type: attr.Number},
	{LocalName: "kernelMatrix", Property: "kernelMatrix", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "kernelUnitLength", Property: "kernelUnitLength", Type: attr.String},
	{LocalName: "kerning", Property: "kerning", Type: attr.String},
	{LocalName: "keyPoints", Property: "keyPoints", Type: attr.String},
	{LocalName: "keySplines", Property: "keySplines", Type: attr.String},
	{LocalName: "keyTimes", Property: "keyTimes", Type: attr.String},
	{LocalName: "lang", Property: "lang", Type: attr.String},
	{LocalName: "lengthAdjust", Property: "lengthAdjust", Type: attr.String},
	{LocalName: "letter-spacing", Property: "letterSpacing", Type: attr.String},
	{LocalName: "lighting-color", Property: "lightingColor", Type: attr.String},
	{LocalName: "limitingConeAngle", Property: "limitingConeAngle", Type: attr.Number},
	{LocalName: "local", Property: "local", Type: attr.String},
	{LocalName: "marker-end", Property: "markerEnd", Type: attr.String},
	{LocalName: "marker-mid", Property: "markerMid", Type: attr.String},
	{LocalName: "marker-start", Property: "markerStart", Type: attr.String},
	{LocalName: "markerHeight", Property: "markerHeight", Type: attr.String},
	{LocalName: "markerUnits", Property: "markerUnits", Type: attr.String},
	{LocalName: "markerWidth", Property: "markerWidth", Type: attr.String},
	{LocalName: "mask", Property: "mask", Type: attr.String},
	{LocalName: "maskContentUnits", Property: "maskContentUnits", Type: attr.String},
	{LocalName: "maskUnits", Property: "maskUnits", Type: attr.String},
	{LocalName: "mathematical", Property: "mathematical", Type: attr.String},
	{LocalName: "max", Property: "max", Type: attr.String},
	{LocalName: "media", Property: "media", Type: attr.String},
	{LocalName: "mediaCharacterEncoding", Property: "mediaCharacterEncoding", Type: attr.String},
	{LocalName: "mediaContentEncodings", Property: "mediaContentEncodings", Type: attr.String},
	{LocalName: "mediaSize", Property: "mediaSize", Type: attr.Number},
	{LocalName: "mediaTime", Property: "mediaTime", Type: attr.String},
	{LocalName: "method", Property: "method", Type: attr.String},
	{LocalName: "min", Property: "min", Type: attr.String},
	{LocalName: "mode", Property: "mode", Type: attr.String},
	{LocalName: "name", Property: "name", Type: attr.String},
	{LocalName: "nav-down", Property: "navDown", Type: attr.String},
	{LocalName: "nav-down-left", Property: "navDownLeft", Type: attr.String},
	{LocalName: "nav-down-right", Property: "navDownRight", Type: attr.String},
	{LocalName: "nav-left", Property: "navLeft", Type: attr.String},
	{LocalName: "nav-next", Property: "navNext", Type: attr.String},
	{LocalName: "nav-prev", Property: "navPrev", Type: attr.String},
	{LocalName: "nav-right", Property: "navRight", Type: attr.String},
	{LocalName: "nav-up", Property: "navUp", Type: attr.String},
	{LocalName: "nav-up-left", Property: "navUpLeft", Type: attr.String},
	{LocalName: "nav-up-right", Property: "navUpRight", Type: attr.String},
	{LocalName: "numOctaves", Property: "numOctaves", Type: attr.String},
	{LocalName: "observer", Property: "observer", Type: attr.String},
	{LocalName: "offset", Property: "offset", Type: attr.String},
	{LocalName: "onabort", Property: "onAbort", Type: attr.String},
	{LocalName: "onactivate", Property: "onActivate", Type: attr.String},
	{LocalName: "onbegin", Property: "onBegin", Type: attr.String},
	{LocalName: "onblur", Property: "onBlur", Type: attr.String},
	{LocalName: "onchange", Property: "onChange", Type: attr.String},
	{LocalName: "onclick", Property: "onClick", Type: attr.String},
	{LocalName: "onend", Property: "onEnd", Type: attr.String},
	{LocalName: "onerror", Property: "onError", Type: attr.String},
	{LocalName: "onfocus", Property: "onFocus", Type: attr.String},
	{LocalName: "onfocusin", Property: "onFocusIn", Type: attr.String},
	{LocalName: "onfocusout", Property: "onFocusOut", Type: attr.String},
	{LocalName: "onkeydown", Property: "onKeyDown", Type: attr.String},
	{LocalName: "onkeyup", Property: "onKeyUp", Type: attr.String},
	{LocalName: "onload", Property: "onLoad", Type: attr.String},
	{LocalName: "onmousedown", Property: "onMouseDown", Type: attr.String},
	{LocalName: "onmousemove", Property: "onMouseMove", Type: attr.String},
	{LocalName: "onmouseout", Property: "onMouseOut", Type: attr.String},
	{LocalName: "onmouseover", Property: "onMouseOver", Type: attr.String},
	{LocalName: "onmouseup", Property: "onMouseUp", Type: attr.String},
	{LocalName: "onrepeat", Property: "onRepeat", Type: attr.String},
	{LocalName: "onresize", Property: "onResize", Type: attr.String},
	{LocalName: "onscroll", Property: "onScroll", Type: attr.String},
	{LocalName: "onunload", Property: "onUnload", Type: attr.String},
	{LocalName: "onzoom", Property: "onZoom", Type: attr.String},
	{LocalName: "opacity", Property: "opacity", Type: attr.String},
	{LocalName: "operator", Property: "operator", Type: attr.String},
	{LocalName: "order", Property: "order", Type: attr.String},
	{LocalName: "orient", Property: "orient", Type: attr.String},
	{LocalName: "orientation", Property: "orientation", Type: attr.String},
	{LocalName: "origin", Property: "origin", Type: attr.String},
	{LocalName: "overflow", Property: "overflow", Type: attr.String},
	{LocalName: "overlay", Property: "overlay", Type: attr.String},
	{LocalName: "overline-position", Property: "overlinePosition", Type: attr.Number},
	{LocalName: "overline-thickness", Property: "overlineThickness", Type: attr.Number},
	{LocalName: "paint-order", Property: "paintOrder", Type: attr.String},
	{LocalName: "panose-1", Property: "panose1", Type: attr.String},
	{LocalName: "path", Property: "path", Type: attr.String},
	{LocalName: "pathLength", Property: "pathLength", Type: attr.Number},
	{LocalName: "patternContentUnits", Property: "patternContentUnits", Type: attr.String},
	{LocalName: "patternTransform", Property: "patternTransform", Type: attr.String},
	{LocalName: "patternUnits", Property: "patternUnits", Type: attr.String},
	{LocalName: "phase", Property: "phase", Type: attr.String},
	{LocalName: "ping", Property: "ping", Type: attr.SpaceSep | attr.String},
	{LocalName: "pitch", Property: "pitch", Type: attr.String},
	{LocalName: "playbackorder", Property: "playbackOrder", Type: attr.String},
	{LocalName: "pointer-events", Property: "pointerEvents", Type: attr.String},
	{LocalName: "points", Property: "points", Type: attr.String},
	{LocalName: "pointsAtX", Property: "pointsAtX", Type: attr.Number},
	{LocalName: "pointsAtY", Property: "pointsAtY", Type: attr.Number},
	{LocalName: "pointsAtZ", Property: "pointsAtZ", Type: attr.Number},
	{LocalName: "preserveAlpha", Property: "preserveAlpha", Type: attr.String},
	{LocalName: "preserveAspectRatio", Property: "preserveAspectRatio", Type: attr.String},
	{LocalName: "primitiveUnits", Property: "primitiveUnits", Type: attr.String},
	{LocalName: "propagate", Property: "propagate", Type: attr.String},
	{LocalName: "property", Property: "property", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "r", Property: "r", Type: attr.String},
	{LocalName: "radius", Property: "radius", Type: attr.String},
	{LocalName: "refX", Property: "refX", Type: attr.String},
	{LocalName: "refY", Property: "refY", Type: attr.String},
	{LocalName: "rel", Property: "rel", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "rendering-intent", Property: "renderingIntent", Type: attr.String},
	{LocalName: "repeatCount", Property: "repeatCount", Type: attr.String},
	{LocalName: "repeatDur", Property: "repeatDur", Type: attr.String},
	{LocalName: "requiredExtensions", Property: "requiredExtensions", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "requiredFeatures", Property: "requiredFeatures", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "requiredFonts", Property: "requiredFonts", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "requiredFormats", Property: "requiredFormats", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "resource", Property: "resource", Type: attr.String},
	{LocalName: "restart", Property: "restart", Type: attr.String},
	{LocalName: "result", Property: "result", Type: attr.String},
	{LocalName: "rev", Property: "rev", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "role", Property: "role", Type: attr.String},
	{LocalName: "rotate", Property: "rotate", Type: attr.String},
	{LocalName: "rx", Property: "rx", Type: attr.String},
	{LocalName: "ry", Property: "ry", Type: attr.String},
	{LocalName: "scale", Property: "scale", Type: attr.String},
	{LocalName: "seed", Property: "seed", Type: attr.String},
	{LocalName: "shape-rendering", Property: "shapeRendering", Type: attr.String},
	{LocalName: "side", Property: "side", Type: attr.String},
	{LocalName: "slope", Property: "slope", Type: attr.String},
	{LocalName: "snapshotTime", Property: "snapshotTime", Type: attr.String},
	{LocalName: "specularConstant", Property: "specularConstant", Type: attr.Number},
	{LocalName: "specularExponent", Property: "specularExponent", Type: attr.Number},
	{LocalName: "spreadMethod", Property: "spreadMethod", Type: attr.String},
	{LocalName: "spacing", Property: "spacing", Type: attr.String},
	{LocalName: "startOffset", Property: "startOffset", Type: attr.String},
	{LocalName: "stdDeviation", Property: "stdDeviation", Type: attr.String},
	{LocalName: "stemh", Property: "stemh", Type: attr.String},
	{LocalName: "stemv", Property: "stemv", Type: attr.String},
	{LocalName: "stitchTiles", Property: "stitchTiles", Type: attr.String},
	{LocalName: "stop-color", Property: "stopColor", Type: attr.String},
	{LocalName: "stop-opacity", Property: "stopOpacity", Type: attr.String},
	{LocalName: "strikethrough-position", Property: "strikethroughPosition", Type: attr.Number},
	{LocalName: "strikethrough-thickness", Property: "strikethroughThickness", Type: attr.Number},
	{LocalName: "string", Property: "string", Type: attr.String},
	{LocalName: "stroke", Property: "stroke", Type: attr.String},
	{LocalName: "stroke-dasharray", Property: "strokeDashArray", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "stroke-dashoffset", Property: "strokeDashOffset", Type: attr.String},
	{LocalName: "stroke-linecap", Property: "strokeLineCap", Type: attr.String},
	{LocalName: "stroke-linejoin", Property: "strokeLineJoin", Type: attr.String},
	{LocalName: "stroke-miterlimit", Property: "strokeMiterLimit", Type: attr.Number},
	{LocalName: "stroke-opacity", Property: "strokeOpacity", Type: attr.Number},
	{LocalName: "stroke-width", Property: "strokeWidth", Type: attr.String},
	{LocalName: "style", Property: "style", Type: attr.String},
	{LocalName: "surfaceScale", Property: "surfaceScale", Type: attr.Number},
	{LocalName: "syncBehavior", Property: "syncBehavior", Type: attr.String},
	{LocalName: "syncBehaviorDefault", Property: "syncBehaviorDefault", Type: attr.String},
	{LocalName: "syncMaster", Property: "syncMaster", Type: attr.String},
	{LocalName: "syncTolerance", Property: "syncTolerance", Type: attr.String},
	{LocalName: "syncToleranceDefault", Property: "syncToleranceDefault", Type: attr.String},
	{LocalName: "systemLanguage", Property: "systemLanguage", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "tabindex", Property: "tabIndex", Type: attr.Number},
	{LocalName: "tableValues", Property: "tableValues", Type: attr.String},
	{LocalName: "target", Property: "target", Type: attr.String},
	{LocalName: "targetX", Property: "targetX", Type: attr.Number},
	{LocalName: "targetY", Property: "targetY", Type: attr.Number},
	{LocalName: "text-anchor", Property: "textAnchor", Type: attr.String},
	{LocalName: "text-decoration", Property: "textDecoration", Type: attr.String},
	{LocalName: "text-rendering", Property: "textRendering", Type: attr.String},
	{LocalName: "textLength", Property: "textLength", Type: attr.String},
	{LocalName: "timelinebegin", Property: "timelineBegin", Type: attr.String},
	{LocalName: "title", Property: "title", Type: attr.String},
	{LocalName: "to", Property: "to", Type: attr.String},
	{LocalName: "transform", Property: "transform", Type: attr.String},
	{LocalName: "transform-origin", Property: "transformOrigin", Type: attr.String},
	{LocalName: "type", Property: "type", Type: attr.String},
	{LocalName: "typeof", Property: "typeOf", Type: attr.CommaOrSpaceSep | attr.String},
	{LocalName: "u1", Property: "u1", Type: attr.String},
	{LocalName: "u2", Property: "u2", Type: attr.String},
	{LocalName: "underline-position", Property: "underlinePosition", Type: attr.Number},
	{LocalName: "underline-thickness", Property: "underlineThickness", Type: attr.Number},
	{LocalName: "unicode", Property: "unicode", Type: attr.String},
	{LocalName: "unicode-bidi", Property: "unicodeBidi", Type: attr.String},
	{LocalName: "unicode-range", Property: "unicodeRange", Type: attr.String},
	{LocalName: "units-per-em", Property: "unitsPerEm", Type: attr.Number},
	{LocalName: "v-alphabetic", Property: "vAlphabetic", Type: attr.Number},
	{LocalName: "v-hanging", Property: "vHanging", Type: attr.Number},
	{LocalName: "v-ideographic", Property: "vIdeographic", Type: attr.Number},
	{LocalName: "v-mathematical", Property: "vMathematical", Type: attr.Number},
	{LocalName: "values", Property: "values", Type: attr.String},
	{LocalName: "vector-effect", Property: "vectorEffect", Type: attr.String},
	{LocalName: "version", Property: "version", Type: attr.String},
	{LocalName: "vert-adv-y", Property: "vertAdvY", Type: attr.Number},
	{LocalName: "vert-origin-x", Property: "vertOriginX", Type: attr.Number},
	{LocalName: "vert-origin-y", Property: "vertOriginY", Type: attr.Number},
	{LocalName: "viewBox", Property: "viewBox", Type: attr.String},
	{LocalName: "viewTarget", Property: "viewTarget", Type: attr.String},
	{LocalName: "visibility", Property: "visibility", Type: attr.String},
	{LocalName: "width", Property: "width", Type: attr.String},
	{LocalName: "widths", Property: "widths", Type: attr.String},
	{LocalName: "word-spacing", Property: "wordSpacing", Type: attr.String},
	{LocalName: "writing-mode", Property: "writingMode", Type: attr.String},
	{LocalName: "x", Property: "x", Type: attr.String},
	{LocalName: "x-height", Property: "xHeight", Type: attr.Number},
	{LocalName: "x1", Property: "x1", Type: attr.String},
	{LocalName: "x2", Property: "x2", Type: attr.String},
	{LocalName: "xChannelSelector", Property: "xChannelSelector", Type: attr.String},
	{LocalName: "xlink:actuate", Property: "xLinkActuate", Type: attr.String},
	{LocalName: "xlink:arcrole", Property: "xLinkArcRole", Type: attr.String},
	{LocalName: "xlink:href", Property: "xLinkHref", Type: attr.String},
	{LocalName: "xlink:role", Property: "xLinkRole", Type: attr.String},
	{LocalName: "xlink:show", Property: "xLinkShow", Type: attr.String},
	{LocalName: "xlink:title", Property: "xLinkTitle", Type: attr.String},
	{LocalName: "xlink:type", Property: "xLinkType", Type: attr.String},
	{LocalName: "xml:base", Property: "xmlBase", Type: attr.String},
	{LocalName: "xml:lang", Property: "xmlLang", Type: attr.String},
	{LocalName: "xml:space", Property: "xmlSpace", Type: attr.String},
	{LocalName: "y", Property: "y", Type: attr.String},
	{LocalName: "y1", Property: "y1", Type: attr.String},
	{LocalName: "y2", Property: "y2", Type: attr.String},
	{LocalName: "yChannelSelector", Property: "yChannelSelector", Type: attr.String},
	{LocalName: "z", Property: "z", Type: attr.String},
	{LocalName: "zoomAndPan", Property: "zoomAndPan", Type: attr.String},
}
