package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/dataattr"
	"github.com/adammathes/webattr/pkg/webns"
)

// probe generates one random input for a namespace and checks a property
// against it. run returns an empty failure when the property holds.
type probe struct {
	name        string
	description string
	weight      int // relative probability weight
	run         func(ns *webns.Namespace, rng *rand.Rand) (input, failure string)
}

var allProbes = []probe{
	{
		name:        "data_inverse",
		description: "Deriving from a data-* name and back from its property yields the name",
		weight:      4,
		run:         probeDataInverse,
	},
	{
		name:        "case_fold",
		description: "Any ASCII case permutation of a static name resolves to the same attribute",
		weight:      3,
		run:         probeCaseFold,
	},
	{
		name:        "property_roundtrip",
		description: "Resolving a static attribute's property name yields the same attribute",
		weight:      2,
		run:         probePropertyRoundTrip,
	},
	{
		name:        "codec_idempotence",
		description: "Parse then serialize is stable from the second cycle on",
		weight:      5,
		run:         probeCodecIdempotence,
	},
	{
		name:        "unknown_rejected",
		description: "Names outside the tables and the data-* space fail to resolve",
		weight:      1,
		run:         probeUnknownRejected,
	},
}

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	suffixChars = lowerChars + "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_."
)

func randomString(rng *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

// randomCase flips the case of each ASCII letter with probability one half.
func randomCase(rng *rand.Rand, s string) string {
	b := []byte(s)
	for i, c := range b {
		if rng.Intn(2) == 0 {
			continue
		}
		switch {
		case 'a' <= c && c <= 'z':
			b[i] = c - ('a' - 'A')
		case 'A' <= c && c <= 'Z':
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func pickAttribute(ns *webns.Namespace, rng *rand.Rand) webns.Attribute {
	all := ns.Attributes()
	return all[rng.Intn(len(all))]
}

func probeDataInverse(_ *webns.Namespace, rng *rand.Rand) (string, string) {
	// An upper-case first suffix character does not survive the round trip.
	suffix := randomString(rng, lowerChars, 1) + randomString(rng, suffixChars, rng.Intn(8))
	name := randomCase(rng, "data-") + suffix

	fwd, err := dataattr.FromName(name)
	if err != nil {
		return name, fmt.Sprintf("FromName: %v", err)
	}
	back, err := dataattr.FromProperty(fwd.Property())
	if err != nil {
		return name, fmt.Sprintf("FromProperty(%q): %v", fwd.Property(), err)
	}
	if want := "data-" + suffix; back.LocalName() != want {
		return name, fmt.Sprintf("got %q back through %q, want %q", back.LocalName(), fwd.Property(), want)
	}
	return name, ""
}

func probeCaseFold(ns *webns.Namespace, rng *rand.Rand) (string, string) {
	want := pickAttribute(ns, rng)
	name := randomCase(rng, want.LocalName())
	got, err := ns.ResolveByLocalName(name)
	if err != nil {
		return name, err.Error()
	}
	if got != want {
		return name, fmt.Sprintf("resolved to %s, want %s", got, want)
	}
	return name, ""
}

func probePropertyRoundTrip(ns *webns.Namespace, rng *rand.Rand) (string, string) {
	want := pickAttribute(ns, rng)
	got, err := ns.ResolveByPropertyName(want.Property())
	if err != nil {
		return want.Property(), err.Error()
	}
	if got != want {
		return want.Property(), fmt.Sprintf("resolved to %s, want %s", got, want)
	}
	return want.Property(), ""
}

var valueTokens = []string{
	"", "true", "false", "a", "b", "1", "2.5", "x y", "utf-8", "#id", "TRUE", " ",
}

var valueSeparators = []string{" ", ",", ", ", "  ", " , ", ",,"}

func randomValue(rng *rand.Rand) string {
	var b strings.Builder
	n := rng.Intn(4)
	for i := 0; i < n; i++ {
		if i > 0 || rng.Intn(4) == 0 {
			b.WriteString(valueSeparators[rng.Intn(len(valueSeparators))])
		}
		b.WriteString(valueTokens[rng.Intn(len(valueTokens))])
	}
	return b.String()
}

func probeCodecIdempotence(ns *webns.Namespace, rng *rand.Rand) (string, string) {
	h := pickAttribute(ns, rng)
	raw, present := randomValue(rng), rng.Intn(8) != 0
	input := fmt.Sprintf("%s %s", h.LocalName(), h.Type())
	if present {
		input += fmt.Sprintf(" %q", raw)
	}

	v1, err := h.Parse(raw, present)
	if err != nil {
		if !errors.Is(err, attr.ErrInvalidAttributeValue) {
			return input, fmt.Sprintf("unexpected error: %v", err)
		}
		return input, ""
	}
	s1 := h.Serialize(v1)
	if s1.Kind() == attr.Omitted {
		return input, ""
	}
	v2, err := h.Parse(s1.Text(), s1.Kind() == attr.Text)
	if err != nil {
		// An empty list serializes to "", which NUMBER alone rejects.
		if s1.Text() == "" && !h.Type().Any(attr.String|attr.EmptyString) {
			return input, ""
		}
		return input, fmt.Sprintf("reparse of %s: %v", s1, err)
	}
	if s2 := h.Serialize(v2); s2 != s1 {
		return input, fmt.Sprintf("serialized to %s then %s", s1, s2)
	}
	return input, ""
}

func probeUnknownRejected(ns *webns.Namespace, rng *rand.Rand) (string, string) {
	name := "x-fuzz-" + randomString(rng, suffixChars, 1+rng.Intn(6))
	if rng.Intn(3) == 0 {
		name = randomCase(rng, "data-")[:1+rng.Intn(5)]
	}
	h, err := ns.ResolveByLocalName(name)
	switch {
	case err == nil && h.IsStatic():
		// "data" is a static HTML5 attribute of its own.
		return name, ""
	case err == nil:
		return name, fmt.Sprintf("resolved to %s", h)
	case !errors.Is(err, attr.ErrInvalidAttribute):
		return name, fmt.Sprintf("unexpected error: %v", err)
	}
	return name, ""
}
