package normalize

import (
	"regexp"
	"strings"
)

// Body is a canonical body category.
type Body string

const (
	BodyPickup      Body = "PICKUP"
	BodyBus         Body = "BUS"
	BodyPlatform    Body = "PLATFORM"
	BodyVan         Body = "VAN"
	BodyChassis     Body = "CHASSIS"
	BodySUV         Body = "SUV"
	BodyWagon       Body = "WAGON"
	BodyConvertible Body = "CONVERTIBLE"
	BodyCoupe       Body = "COUPE"
	BodyMPV         Body = "MPV"
	BodyHatchback   Body = "HATCHBACK"
	BodySedan       Body = "SEDAN"
	BodyUnknown     Body = "UNKNOWN"
)

// bodyRule maps raw keywords onto a canonical body. Exact entries must equal
// the whole (cleaned) input; substring entries match anywhere in it.
type bodyRule struct {
	canonical  Body
	substrings []string
	exact      []string
}

// bodyRules is evaluated in order, first match wins. The order is a
// correctness requirement: compound Italian body names contain keywords of
// several categories ("microfurgone pick-up" holds both a pickup and a van
// marker, "cabinato con cassone" both a chassis and a platform marker), so
// the more specific rule must come first. "pulmino" is kept under VAN: that
// mapping carries the stronger support in historical matched pairs.
var bodyRules = []bodyRule{
	{canonical: BodyPickup, substrings: []string{"pick-up", "pick up", "pickup"}},
	{canonical: BodyBus, substrings: []string{"autobus", "scuolabus"}, exact: []string{"bus"}},
	{canonical: BodyPlatform, substrings: []string{"cassone", "carro"}},
	{canonical: BodyVan, substrings: []string{"furgone", "furgonato", "scudato", "pulmino", "promiscuo", "combi", "allestito"}, exact: []string{"van"}},
	{canonical: BodyChassis, substrings: []string{"cabinato", "telaio"}, exact: []string{"chassis", "cab"}},
	{canonical: BodyPlatform, substrings: []string{"pianale", "platform"}},
	{canonical: BodySUV, substrings: []string{"suv", "crossover", "fuoristrada", "torpedo"}, exact: []string{"fst"}},
	{canonical: BodyWagon, substrings: []string{"wagon", "familiare", "estate", "touring"}},
	{canonical: BodyConvertible, substrings: []string{"cabrio", "spider", "roadster", "convertible", "apribile", "barchetta"}},
	{canonical: BodyCoupe, substrings: []string{"coup"}},
	{canonical: BodyMPV, substrings: []string{"monovolume", "mpv", "minivan", "multispazio"}},
	{canonical: BodyHatchback, substrings: []string{"hatchback"}},
	{canonical: BodySedan, substrings: []string{"berlina", "sedan", "3 volumi"}},
}

var doorSuffixRe = regexp.MustCompile(`\s*\d+\s*port[ei]`)

// NormalizeBody maps a raw body string to a canonical Body. Door-count
// suffixes ("5 porte") are stripped before the rule table runs.
func NormalizeBody(raw string) Body {
	if strings.TrimSpace(raw) == "" {
		return BodyUnknown
	}
	body := strings.TrimSpace(FoldAccents(raw))
	body = strings.TrimSpace(doorSuffixRe.ReplaceAllString(body, ""))

	for _, rule := range bodyRules {
		for _, kw := range rule.exact {
			if body == kw {
				return rule.canonical
			}
		}
		for _, kw := range rule.substrings {
			if strings.Contains(body, kw) {
				return rule.canonical
			}
		}
	}
	return BodyUnknown
}
