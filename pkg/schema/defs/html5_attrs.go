package defs

import (
	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/schema"
)

// HTML5Attributes lists the attributes of the HTML5 namespace.
var HTML5Attributes = []schema.Record{
	{LocalName: "abbr", Property: "abbr", Type: attr.String},
	{LocalName: "accept", Property: "accept", Type: attr.CommaSep | attr.String},
	{LocalName: "accept-charset", Property: "acceptCharset", Type: attr.SpaceSep | attr.String},
	{LocalName: "accesskey", Property: "accessKey", Type: attr.SpaceSep | attr.String},
	{LocalName: "action", Property: "action", Type: attr.String},
	{LocalName: "allow", Property: "allow", Type: attr.String},
	{LocalName: "allowfullscreen", Property: "allowFullScreen", Type: attr.Bool},
	{LocalName: "allowpaymentrequest", Property: "allowPaymentRequest", Type: attr.Bool},
	{LocalName: "allowusermedia", Property: "allowUserMedia", Type: attr.Bool},
	{LocalName: "alt", Property: "alt", Type: attr.String},
	{LocalName: "as", Property: "as", Type: attr.String},
	{LocalName: "async", Property: "async", Type: attr.Bool},
	{LocalName: "autocapitalize", Property: "autoCapitalize", Type: attr.String},
	{LocalName: "autocomplete", Property: "autoComplete", Type: attr.SpaceSep | attr.String},
	{LocalName: "autofocus", Property: "autoFocus", Type: attr.Bool},
	{LocalName: "autoplay", Property: "autoPlay", Type: attr.Bool},
	{LocalName: "capture", Property: "capture", Type: attr.Bool},
	{LocalName: "charset", Property: "charSet", Type: attr.String},
	{LocalName: "checked", Property: "checked", Type: attr.Bool},
	{LocalName: "cite", Property: "cite", Type: attr.String},
	{LocalName: "class", Property: "className", Type: attr.SpaceSep | attr.String},
	{LocalName: "cols", Property: "cols", Type: attr.Number},
	{LocalName: "colspan", Property: "colSpan", Type: attr.String},
	{LocalName: "content", Property: "content", Type: attr.String},
	{LocalName: "contenteditable", Property: "contentEditable", Type: attr.True | attr.EmptyString | attr.False},
	{LocalName: "controls", Property: "controls", Type: attr.Bool},
	{LocalName: "controlslist", Property: "controlsList", Type: attr.SpaceSep | attr.String},
	{LocalName: "coords", Property: "coords", Type: attr.CommaSep | attr.String},
	{LocalName: "crossorigin", Property: "crossOrigin", Type: attr.String},
	{LocalName: "data", Property: "data", Type: attr.String},
	{LocalName: "datetime", Property: "dateTime", Type: attr.String},
	{LocalName: "decoding", Property: "decoding", Type: attr.String},
	{LocalName: "default", Property: "default", Type: attr.Bool},
	{LocalName: "defer", Property: "defer", Type: attr.Bool},
	{LocalName: "dir", Property: "dir", Type: attr.String},
	{LocalName: "dirname", Property: "dirName", Type: attr.String},
	{LocalName: "disabled", Property: "disabled", Type: attr.Bool},
	{LocalName: "download", Property: "download", Type: attr.Bool | attr.String},
	{LocalName: "draggable", Property: "draggable", Type: attr.True | attr.False},
	{LocalName: "enctype", Property: "encType", Type: attr.String},
	{LocalName: "enterkeyhint", Property: "enterKeyHint", Type: attr.String},
	{LocalName: "form", Property: "form", Type: attr.String},
	{LocalName: "formaction", Property: "formAction", Type: attr.String},
	{LocalName: "formenctype", Property: "formEncType", Type: attr.String},
	{LocalName: "formmethod", Property: "formMethod", Type: attr.String},
	{LocalName: "formnovalidate", Property: "formNoValidate", Type: attr.Bool},
	{LocalName: "formtarget", Property: "formTarget", Type: attr.String},
	{LocalName: "headers", Property: "headers", Type: attr.SpaceSep | attr.String},
	{LocalName: "height", Property: "height", Type: attr.Number},
	{LocalName: "hidden", Property: "hidden", Type: attr.Bool},
	{LocalName: "high", Property: "high", Type: attr.Number},
	{LocalName: "href", Property: "href", Type: attr.String},
	{LocalName: "hreflang", Property: "hrefLang", Type: attr.String},
	{LocalName: "for", Property: "htmlFor", Type: attr.SpaceSep | attr.String},
	{LocalName: "http-equiv", Property: "httpEquiv", Type: attr.SpaceSep | attr.String},
	{LocalName: "id", Property: "id", Type: attr.String},
	{LocalName: "imagesizes", Property: "imageSizes", Type: attr.String},
	{LocalName: "imagesrcset", Property: "imageSrcSet", Type: attr.CommaSep | attr.String},
	{LocalName: "inputmode", Property: "inputMode", Type: attr.String},
	{LocalName: "integrity", Property: "integrity", Type: attr.String},
	{LocalName: "is", Property: "is", Type: attr.String},
	{LocalName: "ismap", Property: "isMap", Type: attr.Bool},
	{LocalName: "itemid", Property: "itemId", Type: attr.String},
	{LocalName: "itemprop", Property: "itemProp", Type: attr.SpaceSep | attr.String},
	{LocalName: "itemref", Property: "itemRef", Type: attr.SpaceSep | attr.String},
	{LocalName: "itemscope", Property: "itemScope", Type: attr.Bool},
	{LocalName: "itemtype", Property: "itemType", Type: attr.SpaceSep | attr.String},
	{LocalName: "kind", Property: "kind", Type: attr.String},
	{LocalName: "label", Property: "label", Type: attr.String},
	{LocalName: "lang", Property: "lang", Type: attr.String},
	{LocalName: "language", Property: "language", Type: attr.String},
	{LocalName: "list", Property: "list", Type: attr.String},
	{LocalName: "loading", Property: "loading", Type: attr.String},
	{LocalName: "loop", Property: "loop", Type: attr.Bool},
	{LocalName: "low", Property: "low", Type: attr.Number},
	{LocalName: "manifest", Property: "manifest", Type: attr.String},
	{LocalName: "max", Property: "max", Type: attr.String},
	{LocalName: "maxlength", Property: "maxLength", Type: attr.Number},
	{LocalName: "media", Property: "media", Type: attr.String},
	{LocalName: "method", Property: "method", Type: attr.String},
	{LocalName: "min", Property: "min", Type: attr.String},
	{LocalName: "minlength", Property: "minLength", Type: attr.Number},
	{LocalName: "multiple", Property: "multiple", Type: attr.Bool},
	{LocalName: "muted", Property: "muted", Type: attr.Bool},
	{LocalName: "name", Property: "name", Type: attr.String},
	{LocalName: "nonce", Property: "nonce", Type: attr.String},
	{LocalName: "nomodule", Property: "noModule", Type: attr.Bool},
	{LocalName: "novalidate", Property: "noValidate", Type: attr.Bool},
	{LocalName: "onabort", Property: "onAbort", Type: attr.String},
	{LocalName: "onafterprint", Property: "onAfterPrint", Type: attr.String},
	{LocalName: "onauxclick", Property: "onAuxClick", Type: attr.String},
	{LocalName: "onbeforeprint", Property: "onBeforePrint", Type: attr.String},
	{LocalName: "onbeforeunload", Property: "onBeforeUnload", Type: attr.String},
	{LocalName: "onblur", Property: "onBlur", Type: attr.String},
	{LocalName: "oncancel", Property: "onCancel", Type: attr.String},
	{LocalName: "oncanplay", Property: "onCanPlay", Type: attr.String},
	{LocalName: "oncanplaythrough", Property: "onCanPlayThrough", Type: attr.String},
	{LocalName: "onchange", Property: "onChange", Type: attr.String},
	{LocalName: "onclick", Property: "onClick", Type: attr.String},
	{LocalName: "onclose", Property: "onClose", Type: attr.String},
	{LocalName: "oncontextmenu", Property: "onContextMenu", Type: attr.String},
	{LocalName: "oncopy", Property: "onCopy", Type: attr.String},
	{LocalName: "oncuechange", Property: "onCueChange", Type: attr.String},
	{LocalName: "oncut", Property: "onCut", Type: attr.String},
	{LocalName: "ondblclick", Property: "onDblClick", Type: attr.String},
	{LocalName: "ondrag", Property: "onDrag", Type: attr.String},
	{LocalName: "ondragend", Property: "onDragEnd", Type: attr.String},
	{LocalName: "ondragenter", Property: "onDragEnter", Type: attr.String},
	{LocalName: "ondragexit", Property: "onDragExit", Type: attr.String},
	{LocalName: "ondragleave", Property: "onDragLeave", Type: attr.String},
	{LocalName: "ondragover", Property: "onDragOver", Type: attr.String},
	{LocalName: "ondragstart", Property: "onDragStart", Type: attr.String},
	{LocalName: "ondrop", Property: "onDrop", Type: attr.String},
	{LocalName: "ondurationchange", Property: "onDurationChange", Type: attr.String},
	{LocalName: "onemptied", Property: "onEmptied", Type: attr.String},
	{LocalName: "onended", Property: "onEnded", Type: attr.String},
	{LocalName: "onerror", Property: "onError", Type: attr.String},
	{LocalName: "onfocus", Property: "onFocus", Type: attr.String},
	{LocalName: "onformdata", Property: "onFormData", Type: attr.String},
	{LocalName: "onhashchange", Property: "onHashChange", Type: attr.String},
	{LocalName: "oninput", Property: "onInput", Type: attr.String},
	{LocalName: "oninvalid", Property: "onInvalid", Type: attr.String},
	{LocalName: "onkeydown", Property: "onKeyDown", Type: attr.String},
	{LocalName: "onkeypress", Property: "onKeyPress", Type: attr.String},
	{LocalName: "onkeyup", Property: "onKeyUp", Type: attr.String},
	{LocalName: "onlanguagechange", Property: "onLanguageChange", Type: attr.String},
	{LocalName: "onload", Property: "onLoad", Type: attr.String},
	{LocalName: "onloadeddata", Property: "onLoadedData", Type: attr.String},
	{LocalName: "onloadedmetadata", Property: "onLoadedMetadata", Type: attr.String},
	{LocalName: "onloadend", Property: "onLoadEnd", Type: attr.String},
	{LocalName: "onloadstart", Property: "onLoadStart", Type: attr.String},
	{LocalName: "onmessage", Property: "onMessage", Type: attr.String},
	{LocalName: "onmessageerror", Property: "onMessageError", Type: attr.String},
	{LocalName: "onmousedown", Property: "onMouseDown", Type: attr.String},
	{LocalName: "onmouseenter", Property: "onMouseEnter", Type: attr.String},
	{LocalName: "onmouseleave", Property: "onMouseLeave", Type: attr.String},
	{LocalName: "onmousemove", Property: "onMouseMove", Type: attr.String},
	{LocalName: "onmouseout", Property: "onMouseOut", Type: attr.String},
	{LocalName: "onmouseover", Property: "onMouseOver", Type: attr.String},
	{LocalName: "onmouseup", Property: "onMouseUp", Type: attr.String},
	{LocalName: "onoffline", Property: "onOffline", Type: attr.String},
	{LocalName: "ononline", Property: "onOnline", Type: attr.String},
	{LocalName: "onpagehide", Property: "onPageHide", Type: attr.String},
	{LocalName: "onpageshow", Property: "onPageShow", Type: attr.String},
	{LocalName: "onpaste", Property: "onPaste", Type: attr.String},
	{LocalName: "onpause", Property: "onPause", Type: attr.String},
	{LocalName: "onplay", Property: "onPlay", Type: attr.String},
	{LocalName: "onplaying", Property: "onPlaying", Type: attr.String},
	{LocalName: "onpopstate", Property: "onPopState", Type: attr.String},
	{LocalName: "onprogress", Property: "onProgress", Type: attr.String},
	{LocalName: "onratechange", Property: "onRateChange", Type: attr.String},
	{LocalName: "onrejectionhandled", Property: "onRejectionHandled", Type: attr.String},
	{LocalName: "onreset", Property: "onReset", Type: attr.String},
	{LocalName: "onresize", Property: "onResize", Type: attr.String},
	{LocalName: "onscroll", Property: "onScroll", Type: attr.String},
	{LocalName: "onsecuritypolicyviolation", Property: "onSecurityPolicyViolation", Type: attr.String},
	{LocalName: "onseeked", Property: "onSeeked", Type: attr.String},
	{LocalName: "onseeking", Property: "onSeeking", Type: attr.String},
	{LocalName: "onselect", Property: "onSelect", Type: attr.String},
	{LocalName: "onslotchange", Property: "onSlotChange", Type: attr.String},
	{LocalName: "onstalled", Property: "onStalled", Type: attr.String},
	{LocalName: "onstorage", Property: "onStorage", Type: attr.String},
	{LocalName: "onsubmit", Property: "onSubmit", Type: attr.String},
	{LocalName: "onsuspend", Property: "onSuspend", Type: attr.String},
	{LocalName: "ontimeupdate", Property: "onTimeUpdate", Type: attr.String},
	{LocalName: "ontoggle", Property: "onToggle", Type: attr.String},
	{LocalName: "onunhandledrejection", Property: "onUnhandledRejection", Type: attr.String},
	{LocalName: "onunload", Property: "onUnload", Type: attr.String},
	{LocalName: "onvolumechange", Property: "onVolumeChange", Type: attr.String},
	{LocalName: "onwaiting", Property: "onWaiting", Type: attr.String},
	{LocalName: "onwheel", Property: "onWheel", Type: attr.String},
	{LocalName: "open", Property: "open", Type: attr.Bool},
	{LocalName: "optimum", Property: "optimum", Type: attr.Number},
	{LocalName: "pattern", Property: "pattern", Type: attr.String},
	{LocalName: "ping", Property: "ping", Type: attr.SpaceSep | attr.String},
	{LocalName: "placeholder", Property: "placeholder", Type: attr.String},
	{LocalName: "playsinline", Property: "playsInline", Type: attr.Bool},
	{LocalName: "poster", Property: "poster", Type: attr.String},
	{LocalName: "preload", Property: "preload", Type: attr.String},
	{LocalName: "readonly", Property: "readOnly", Type: attr.Bool},
	{LocalName: "referrerpolicy", Property: "referrerPolicy", Type: attr.String},
	{LocalName: "rel", Property: "rel", Type: attr.SpaceSep | attr.String},
	{LocalName: "required", Property: "required", Type: attr.Bool},
	{LocalName: "reversed", Property: "reversed", Type: attr.Bool},
	{LocalName: "rows", Property: "rows", Type: attr.Number},
	{LocalName: "rowspan", Property: "rowSpan", Type: attr.Number},
	{LocalName: "sandbox", Property: "sandbox", Type: attr.SpaceSep | attr.String},
	{LocalName: "scope", Property: "scope", Type: attr.String},
	{LocalName: "scoped", Property: "scoped", Type: attr.Bool},
	{LocalName: "seamless", Property: "seamless", Type: attr.Bool},
	{LocalName: "selected", Property: "selected", Type: attr.Bool},
	{LocalName: "shape", Property: "shape", Type: attr.String},
	{LocalName: "size", Property: "size", Type: attr.Number},
	{LocalName: "sizes", Property: "sizes", Type: attr.String},
	{LocalName: "slot", Property: "slot", Type: attr.String},
	{LocalName: "span", Property: "span", Type: attr.Number},
	{LocalName: "spellcheck", Property: "spellCheck", Type: attr.True | attr.False},
	{LocalName: "src", Property: "src", Type: attr.String},
	{LocalName: "srcdoc", Property: "srcDoc", Type: attr.String},
	{LocalName: "srclang", Property: "srcLang", Type: attr.String},
	{LocalName: "srcset", Property: "srcSet", Type: attr.CommaSep | attr.String},
	{LocalName: "start", Property: "start", Type: attr.Number},
	{LocalName: "step", Property: "step", Type: attr.String},
	{LocalName: "style", Property: "style", Type: attr.String},
	{LocalName: "tabindex", Property: "tabIndex", Type: attr.Number},
	{LocalName: "target", Property: "target", Type: attr.String},
	{LocalName: "title", Property: "title", Type: attr.String},
	{LocalName: "translate", Property: "translate", Type: attr.String},
	{LocalName: "type", Property: "type", Type: attr.String},
	{LocalName: "typemustmatch", Property: "typeMustMatch", Type: attr.Bool},
	{LocalName: "usemap", Property: "useMap", Type: attr.String},
	{LocalName: "value", Property: "value", Type: attr.True | attr.False | attr.String},
	{LocalName: "width", Property: "width", Type: attr.Number},
	{LocalName: "wrap", Property: "wrap", Type: attr.String},

	// Obsolete and legacy attributes.
	{LocalName: "align", Property: "align", Type: attr.String},
	{LocalName: "alink", Property: "aLink", Type: attr.String},
	{LocalName: "archive", Property: "archive", Type: attr.SpaceSep | attr.String},
	{LocalName: "axis", Property: "axis", Type: attr.String},
	{LocalName: "background", Property: "background", Type: attr.String},
	{LocalName: "bgcolor", Property: "bgColor", Type: attr.String},
	{LocalName: "border", Property: "border", Type: attr.Number},
	{LocalName: "bordercolor", Property: "borderColor", Type: attr.String},
	{LocalName: "bottommargin", Property: "bottomMargin", Type: attr.Number},
	{LocalName: "cellpadding", Property: "cellPadding", Type: attr.String},
	{LocalName: "cellspacing", Property: "cellSpacing", Type: attr.String},
	{LocalName: "char", Property: "char", Type: attr.String},
	{LocalName: "charoff", Property: "charOff", Type: attr.String},
	{LocalName: "classid", Property: "classId", Type: attr.String},
	{LocalName: "clear", Property: "clear", Type: attr.String},
	{LocalName: "code", Property: "code", Type: attr.String},
	{LocalName: "codebase", Property: "codeBase", Type: attr.String},
	{LocalName: "codetype", Property: "codeType", Type: attr.String},
	{LocalName: "color", Property: "color", Type: attr.String},
	{LocalName: "compact", Property: "compact", Type: attr.Bool},
	{LocalName: "declare", Property: "declare", Type: attr.Bool},
	{LocalName: "event", Property: "event", Type: attr.String},
	{LocalName: "face", Property: "face", Type: attr.String},
	{LocalName: "frame", Property: "frame", Type: attr.String},
	{LocalName: "frameborder", Property: "frameBorder", Type: attr.String},
	{LocalName: "hspace", Property: "hSpace", Type: attr.Number},
	{LocalName: "leftmargin", Property: "leftMargin", Type: attr.Number},
	{LocalName: "link", Property: "link", Type: attr.String},
	{LocalName: "longdesc", Property: "longDesc", Type: attr.String},
	{LocalName: "lowsrc", Property: "lowSrc", Type: attr.String},
	{LocalName: "marginheight", Property: "marginHeight", Type: attr.Number},
	{LocalName: "marginwidth", Property: "marginWidth", Type: attr.Number},
	{LocalName: "noresize", Property: "noResize", Type: attr.Bool},
	{LocalName: "nohref", Property: "noHref", Type: attr.Bool},
	{LocalName: "noshade", Property: "noShade", Type: attr.Bool},
	{LocalName: "nowrap", Property: "noWrap", Type: attr.Bool},
	{LocalName: "object", Property: "object", Type: attr.String},
	{LocalName: "profile", Property: "profile", Type: attr.String},
	{LocalName: "prompt", Property: "prompt", Type: attr.String},
	{LocalName: "rev", Property: "rev", Type: attr.String},
	{LocalName: "rightmargin", Property: "rightMargin", Type: attr.Number},
	{LocalName: "rules", Property: "rules", Type: attr.String},
	{LocalName: "scheme", Property: "scheme", Type: attr.String},
	{LocalName: "scrolling", Property: "scrolling", Type: attr.True | attr.False | attr.String},
	{LocalName: "standby", Property: "standby", Type: attr.String},
	{LocalName: "summary", Property: "summary", Type: attr.String},
	{LocalName: "text", Property: "text", Type: attr.String},
	{LocalName: "topmargin", Property: "topMargin", Type: attr.Number},
	{LocalName: "valuetype", Property: "valueType", Type: attr.String},
	{LocalName: "version", Property: "version", Type: attr.String},
	{LocalName: "valign", Property: "vAlign", Type: attr.String},
	{LocalName: "vlink", Property: "vLink", Type: attr.String},
	{LocalName: "vspace", Property: "vSpace", Type: attr.Number},

	// Non-standard attributes.
	{LocalName: "allowtransparency", Property: "allowTransparency", Type: attr.String},
	{LocalName: "autocorrect", Property: "autoCorrect", Type: attr.String},
	{LocalName: "autosave", Property: "autoSave", Type: attr.String},
	{LocalName: "disablepictureinpicture", Property: "disablePictureInPicture", Type: attr.Bool},
	{LocalName: "disableremoteplayback", Property: "disableRemotePlayback", Type: attr.Bool},
	{LocalName: "prefix", Property: "prefix", Type: attr.String},
	{LocalName: "property", Property: "property", Type: attr.String},
	{LocalName: "results", Property: "results", Type: attr.Number},
	{LocalName: "security", Property: "security", Type: attr.String},
	{LocalName: "unselectable", Property: "unselectable", Type: attr.String},
}
